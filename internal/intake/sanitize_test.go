package intake

import "testing"

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My cool movie.mov", "My_cool_movie.mov"},
		{"../../../etc/passwd", "etc_passwd"},
		{"i contain cool \u00fcml\u00e4uts.txt", "i_contain_cool_umlauts.txt"},
		{`C:\Users\me\voice note.WAV`, "C_Users_me_voice_note.WAV"},
		{"café.png", "cafe.png"},
		{"...hidden", "hidden"},
		{"録音.mp3", "mp3"},
		{"日本語", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SecureFilename(tt.in); got != tt.want {
			t.Errorf("SecureFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
