package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowValidate(t *testing.T) {
	tests := []struct {
		name    string
		row     Row
		wantErr error
	}{
		{
			name: "valid row",
			row:  Row{ItemNeeded: "Milk", Urgency: UrgencyNow},
		},
		{
			name:    "empty item rejected",
			row:     Row{ItemNeeded: "", Urgency: UrgencyNow},
			wantErr: ErrItemRequired,
		},
		{
			name:    "whitespace item rejected",
			row:     Row{ItemNeeded: "   ", Urgency: UrgencySoon},
			wantErr: ErrItemRequired,
		},
		{
			name:    "unknown urgency rejected",
			row:     Row{ItemNeeded: "Milk", Urgency: "Whenever"},
			wantErr: ErrInvalidUrgency,
		},
		{
			name:    "empty urgency rejected",
			row:     Row{ItemNeeded: "Milk"},
			wantErr: ErrInvalidUrgency,
		},
		{
			name: "yesterday urgency accepted",
			row:  Row{ItemNeeded: "Eggs", Urgency: UrgencyYesterday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.row.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRowNormalize(t *testing.T) {
	r := Row{
		DateAdded:  " 2026-08-30 09:15 ",
		ItemNeeded: "  Milk ",
		Quantity:   " 2 gallons ",
		WhereToGet: " Walmart ",
		Urgency:    "",
	}
	r.Normalize()

	assert.Equal(t, "2026-08-30 09:15", r.DateAdded)
	assert.Equal(t, "Milk", r.ItemNeeded)
	assert.Equal(t, "2 gallons", r.Quantity)
	assert.Equal(t, "Walmart", r.WhereToGet)
	assert.Equal(t, "", r.Urgency, "normalize trims but assigns no defaults")
	assert.False(t, r.Completed)
}

func TestRowMatches(t *testing.T) {
	row := Row{ItemNeeded: "Whole Milk", WhereToGet: "Walmart"}

	tests := []struct {
		name   string
		needle string
		want   bool
	}{
		{name: "empty needle matches", needle: "", want: true},
		{name: "whitespace needle matches", needle: "   ", want: true},
		{name: "item substring", needle: "milk", want: true},
		{name: "item substring mixed case", needle: "WHOLE", want: true},
		{name: "where substring", needle: "walmart", want: true},
		{name: "no match", needle: "eggs", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, row.Matches(tt.needle))
		})
	}
}

func TestValidUrgency(t *testing.T) {
	for _, u := range Urgencies {
		assert.True(t, ValidUrgency(u), u)
	}
	assert.False(t, ValidUrgency("now"), "urgency values are case-sensitive")
	assert.False(t, ValidUrgency(""))
}
