package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAffirmation(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"yes", true},
		{"  YES  ", true},
		{"Go Ahead", true},
		{"create it", true},
		{"alright", true},
		{"y", true},
		{"yes please", false},
		{"yes!", false},
		{"no", false},
		{"sure, but at 3pm", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAffirmation(tt.msg))
		})
	}
}

func TestLooksLikeConfirmation(t *testing.T) {
	assert.True(t, LooksLikeConfirmation(`I'll add it. Would you like me to create it?`))
	assert.True(t, LooksLikeConfirmation(`Reply "YES" to confirm.`))
	assert.True(t, LooksLikeConfirmation("Okay.\n<!-- CONFIRM: TASK | Read -->"))
	assert.False(t, LooksLikeConfirmation("Photosynthesis converts light into chemical energy."))
}
