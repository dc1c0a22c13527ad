package editor

// Config configures the editor Model. Zero values select defaults.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// TabWidth is the cell width of a tab stop. Defaults to 4.
	TabWidth int

	// KeyMap overrides the default bindings when non-nil.
	KeyMap *KeyMap

	// ReadOnly blocks typing and formatting; movement and copy still work.
	ReadOnly bool

	// Forwarded to buffer.Options.
	HistoryLimit int

	// Clipboard backs copy, cut, and paste. Nil disables them.
	Clipboard Clipboard

	// OnChange is called after every update that changed the text.
	OnChange func(ChangeEvent)
}

const defaultHistoryLimit = 256

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if cfg.KeyMap == nil {
		km := DefaultKeyMap()
		cfg.KeyMap = &km
	}
	return cfg
}
