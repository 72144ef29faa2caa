// Package profile loads named settings profiles from TOML files and
// applies them to a base station session.
//
// # Profile Files
//
// A profile lists only the settings it wants to change; everything else
// is left untouched on the device. Values are validated against the
// device's accepted ranges at load time, so a profile that loads
// cleanly fails to apply only on device or transport errors.
//
//	name = "night"
//	noise-gate = "night"
//	alert-volume = 20
//	side-tone = 0
//	save = true
//
//	[sliders]
//	stream-mix-game = 40
//
//	[[eq]]
//	preset = 1
//	name = "Late Night"
//	gains = [-2, 0, 1, 1, -3]
//
// # Applying
//
//	p, err := profile.Load("night.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = headset.WithSession(func(s *headset.Session) error {
//	    return p.Apply(s)
//	})
//
// With save = true the device snapshots the configuration after all
// settings are written, so it survives a power cycle.
package profile
