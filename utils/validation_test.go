package utils_test

import (
	"testing"

	"restaurent-app-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phone string
		want  bool
	}{
		{"+14165550199", true},
		{"+90 212 555 0199", true},
		{"(416) 555-0199", true},
		{"4165550199", true},
		{"", false},
		{"abc", false},
		{"+0123456", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.phone, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, utils.ValidatePhone(tt.phone))
		})
	}
}
