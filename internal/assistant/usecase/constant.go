package usecase

// Oracle request settings
const (
	OracleTemperature = 0.2
	OracleMaxTokens   = 1024
)

// Log prefixes
const (
	LogPrefixChat   = "internal.assistant.usecase.Chat"
	LogPrefixCommit = "internal.assistant.usecase.commit"
)

// Human readable layouts
const (
	DayLayout     = "Monday, January 2, 2006"
	DayLayoutNoYr = "Monday, January 2"
)

// User facing replies
const (
	MsgConfirmSuffix      = `Would you like me to create %s? Reply "yes" to confirm.`
	MsgProposeTask        = `I'll add the task "%s" to your list.`
	MsgProposeReminder    = `I'll set a reminder "%s" on %s at %s.`
	MsgProposeRange       = `I'll set a reminder "%s" every day from %s to %s at %s (%d reminders).`
	MsgCreatedTask        = `Done! I've added the task "%s" to your list.`
	MsgCreatedReminder    = `Done! I've set a reminder "%s" for %s at %s.`
	MsgCreatedRange       = `Done! I've created %d reminders "%s" from %s to %s, every day at %s.`
	MsgPartialRange       = `I created %d of %d reminders "%s" between %s and %s at %s. These days failed: %s.`
	MsgTaskFailed         = `Sorry, I couldn't create the task "%s". Please try again.`
	MsgReminderFailed     = `Sorry, I couldn't create the reminder "%s". Please try again.`
	MsgBadDateRange       = `Sorry, I couldn't parse the date range. Try something like "15-19 January".`
	MsgMissingTitle       = `What should I call it? Tell me a short title and I'll set it up.`
	MsgEmptyOracleMessage = `Sorry, I didn't catch that. Could you rephrase?`
)

// SystemPrompt is the Oracle contract. Filled with the time context.
const SystemPrompt = `You are the scheduling assistant of a personal study tracker.
You answer questions about studying and help the user create tasks and reminders.

%s

Reply with exactly ONE JSON object and nothing else. Allowed shapes:

{"type": "direct", "message": "<your answer in plain text>"}
{"type": "propose", "action": "TASK", "title": "<short title>"}
{"type": "propose", "action": "REMINDER", "title": "<short title>", "date": "<date>", "time": "<time>"}

Rules:
1. When the user asks to create a task or reminder, answer with "propose". Never claim it is created.
2. "date" is either YYYY-MM-DD, a range "YYYY-MM-DD to YYYY-MM-DD", or the user's own words ("14th dec", "15-19 jan", "tomorrow").
3. "time" is HH:MM in 24-hour format or the user's own words ("2 pm", "noon"). Leave it empty if none was given.
4. Use "type": "commit" with the same fields only if the user has already confirmed that exact action in this conversation.
5. Keep titles short, without dates or times in them.
6. For anything else answer with "direct".`

// TimeContextTemplate gives the Oracle today's study calendar.
const TimeContextTemplate = `[Current time context]
- Now: %s (%s)
- Today: %s
- Tomorrow: %s
- This study week: %s to %s`

// ConfirmedHint is appended when the user affirmed a proposal that could
// not be recovered from the transcript.
const ConfirmedHint = `

The user has just confirmed your previous proposal. Reply with "commit" and the same action fields.`
