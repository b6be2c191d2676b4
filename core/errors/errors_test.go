package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMalformedError(t *testing.T) {
	tests := []struct {
		name     string
		err      *MalformedError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with input",
			err:      &MalformedError{Input: "h2_v0_j2", Reason: "missing level separator"},
			wantMsg:  `malformed identifier "h2_v0_j2": missing level separator`,
			wantBase: ErrMalformed,
		},
		{
			name:     "without input",
			err:      &MalformedError{Reason: "empty level segment"},
			wantMsg:  "malformed identifier: empty level segment",
			wantBase: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, tt.wantBase) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.wantBase)
			}
		})
	}

	// An underlying error must stay reachable without displacing the sentinel.
	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("lexer error")
		err := &MalformedError{Input: "x", Reason: "bad segment", Err: underlyingErr}
		if !errors.Is(err, underlyingErr) {
			t.Error("errors.Is(err, underlyingErr) = false, want true")
		}
		if !errors.Is(err, ErrMalformed) {
			t.Error("errors.Is(err, ErrMalformed) = false, want true")
		}
	})
}

func TestUnknownSpeciesError(t *testing.T) {
	err := &UnknownSpeciesError{Species: "xyz"}
	if got := err.Error(); got != "unknown species: xyz" {
		t.Errorf("Error() = %q, want %q", got, "unknown species: xyz")
	}
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Error("errors.Is(err, ErrUnknownSpecies) = false, want true")
	}

	cause := fmt.Errorf("table lookup failed")
	wrapped := &UnknownSpeciesError{Species: "xyz", Err: cause}
	if !errors.Is(wrapped, ErrUnknownSpecies) || !errors.Is(wrapped, cause) {
		t.Error("wrapped UnknownSpeciesError must match both the sentinel and its cause")
	}
}

func TestUnknownLabelError(t *testing.T) {
	tests := []struct {
		name    string
		err     *UnknownLabelError
		wantMsg string
	}{
		{
			name:    "with backend",
			err:     &UnknownLabelError{Key: "fif1", Backend: "latex"},
			wantMsg: `no latex template for label "fif1"`,
		},
		{
			name:    "without backend",
			err:     &UnknownLabelError{Key: "q"},
			wantMsg: `no template for label "q"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrUnknownLabel) {
				t.Error("errors.Is(err, ErrUnknownLabel) = false, want true")
			}
		})
	}

	cause := fmt.Errorf("overlay dropped the entry")
	wrapped := &UnknownLabelError{Key: "j", Backend: "latex", Err: cause}
	if !errors.Is(wrapped, ErrUnknownLabel) || !errors.Is(wrapped, cause) {
		t.Error("wrapped UnknownLabelError must match both the sentinel and its cause")
	}
}

func TestHelpers(t *testing.T) {
	err := NewMalformed("a__b__c", "more than one level separator")
	if !Is(err, ErrMalformed) {
		t.Error("Is(NewMalformed(...), ErrMalformed) = false, want true")
	}

	var target *MalformedError
	if !As(err, &target) {
		t.Error("As(err, *MalformedError) = false, want true")
	}

	wrapped := Wrap(err, "parsing line list")
	if !errors.Is(wrapped, ErrMalformed) {
		t.Error("wrapped error lost its sentinel")
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
