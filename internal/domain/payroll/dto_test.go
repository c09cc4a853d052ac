package payroll

import (
	"errors"
	"testing"

	"github.com/buildsite/worksite-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePayrollSettingsRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        UpdatePayrollSettingsRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  UpdatePayrollSettingsRequest{ClosingDay: 20, PayDay: 25},
		},
		{
			name: "end of month closing",
			req:  UpdatePayrollSettingsRequest{ClosingDay: 31, PayDay: 10},
		},
		{
			name:       "closing day too small",
			req:        UpdatePayrollSettingsRequest{ClosingDay: 0, PayDay: 25},
			wantFields: []string{"closing_day"},
		},
		{
			name:       "closing day too large",
			req:        UpdatePayrollSettingsRequest{ClosingDay: 32, PayDay: 25},
			wantFields: []string{"closing_day"},
		},
		{
			name:       "pay day out of range",
			req:        UpdatePayrollSettingsRequest{ClosingDay: 20, PayDay: 0},
			wantFields: []string{"pay_day"},
		},
		{
			name:       "both out of range",
			req:        UpdatePayrollSettingsRequest{ClosingDay: -1, PayDay: 40},
			wantFields: []string{"closing_day", "pay_day"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))

			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

// Equal closing and pay days are a configuration error, not a field error:
// both values are individually valid, the pair is not.
func TestUpdatePayrollSettingsRequest_Validate_EqualDays(t *testing.T) {
	req := UpdatePayrollSettingsRequest{ClosingDay: 25, PayDay: 25}
	assert.ErrorIs(t, req.Validate(), ErrClosingDayEqualsPayDay)

	// Range errors take precedence: with a day out of range the pair rule
	// cannot be judged yet.
	req = UpdatePayrollSettingsRequest{ClosingDay: 0, PayDay: 0}
	err := req.Validate()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrClosingDayEqualsPayDay)
}
