package config

const (
	WindowWidth  = 1100
	WindowHeight = 720

	// Backdrop animation
	ParticleCount = 80

	// Section reveal
	RevealThreshold = 0.1

	// Scroll feel (harmonica spring)
	ScrollFrequency = 6.0
	ScrollDamping   = 0.9
	WheelStep       = 60.0
)
