package editor

// Option configures a Session.
type Option func(*Session)

// WithSaver sets the collaborator used by Export.
func WithSaver(saver Saver) Option {
	return func(s *Session) {
		s.saver = saver
	}
}

// WithClipboard sets the collaborator used by Copy.
func WithClipboard(clipboard Clipboard) Option {
	return func(s *Session) {
		s.clipboard = clipboard
	}
}

// WithDefaultPath sets the path suggested to the Saver.
func WithDefaultPath(path string) Option {
	return func(s *Session) {
		if path != "" {
			s.defaultPath = path
		}
	}
}
