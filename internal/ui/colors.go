package ui

// The accessors below read the active theme on every call so a theme switch
// takes effect immediately.

// ColorPrimary returns the heading color.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the label color.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorScore returns the highest-score color.
func ColorScore() string { return GetCurrentTheme().Score }

// ColorLoop returns the highest-loop color.
func ColorLoop() string { return GetCurrentTheme().Loop }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorReset() string     { return GetCurrentTheme().Reset }
