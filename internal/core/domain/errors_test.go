package domain

import (
	"errors"
	"testing"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrDataDirNotFound", ErrDataDirNotFound, "data directory not found"},
		{"ErrPoolShutdown", ErrPoolShutdown, "pool has been shut down"},
		{"ErrEmptyPhrase", ErrEmptyPhrase, "phrase has no searchable words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("expected %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	allErrors := []error{ErrDataDirNotFound, ErrPoolShutdown, ErrEmptyPhrase}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}
