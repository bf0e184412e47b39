package eventpool

import "testing"

func TestMode_Has(t *testing.T) {
	m := AllowMultiHandler | AllowNoHandler
	if !m.Has(AllowMultiHandler) || !m.Has(AllowNoHandler) {
		t.Error("Has() missed a set flag")
	}
	if m.Has(AllowDuplicateHandler) {
		t.Error("Has(AllowDuplicateHandler) = true for unset flag")
	}
	if !m.Has(AllowMultiHandler | AllowNoHandler) {
		t.Error("Has() with combined flags = false, want true")
	}
	if m.Has(AllowMultiHandler | AllowDuplicateHandler) {
		t.Error("Has() must require every bit of the combined flag")
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeDefault, "default"},
		{AllowMultiHandler, "multi-handler"},
		{AllowMultiHandler | AllowDuplicateHandler, "multi-handler|duplicate-handler"},
		{AllowMultiHandler | AllowDuplicateHandler | AllowNoHandler, "multi-handler|duplicate-handler|no-handler"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%b).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
