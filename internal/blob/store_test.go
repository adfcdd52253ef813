package blob

import "testing"

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
		wantErr     bool
	}{
		{"image/jpeg", ".jpg", false},
		{"image/jpg", ".jpg", false},
		{"image/png", ".png", false},
		{"image/webp", ".webp", false},
		{"video/mp4", ".mp4", false},
		{"video/webm", ".webm", false},
		{"image/svg+xml", "", true},
		{"application/octet-stream", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, err := ExtensionFor(tt.contentType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtensionFor(%q) error = %v, wantErr %v", tt.contentType, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtensionFor(%q) = %q, want %q", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	if got := Key("avatars", "user-1", ".png"); got != "avatars/user-1.png" {
		t.Errorf("Key = %q, want %q", got, "avatars/user-1.png")
	}
}

func TestKeyFromURL(t *testing.T) {
	s := &Store{bucket: "playtube-media", endpoint: "localhost:9000"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full url", "http://localhost:9000/playtube-media/avatars/user-1.png", "avatars/user-1.png"},
		{"https url", "https://cdn.example.com/playtube-media/videos/v-1.mp4", "videos/v-1.mp4"},
		{"bare key passthrough", "avatars/user-1.png", "avatars/user-1.png"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.KeyFromURL(tt.input); got != tt.want {
				t.Errorf("KeyFromURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestObjectURL(t *testing.T) {
	plain := &Store{bucket: "playtube-media", endpoint: "localhost:9000", secure: false}
	if got := plain.ObjectURL("avatars/u.png"); got != "http://localhost:9000/playtube-media/avatars/u.png" {
		t.Errorf("ObjectURL = %q", got)
	}

	tls := &Store{bucket: "playtube-media", endpoint: "media.example.com", secure: true}
	if got := tls.ObjectURL("avatars/u.png"); got != "https://media.example.com/playtube-media/avatars/u.png" {
		t.Errorf("ObjectURL = %q", got)
	}
}

func TestRoundTrip_URLToKey(t *testing.T) {
	s := &Store{bucket: "playtube-media", endpoint: "localhost:9000"}
	key := Key("thumbnails", "video-7", ".webp")
	if got := s.KeyFromURL(s.ObjectURL(key)); got != key {
		t.Errorf("round trip = %q, want %q", got, key)
	}
}
