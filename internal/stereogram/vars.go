package stereogram

var (
	Debug = false // set to true for verbose debug output
	PNG   = false // set to true to write snapshots as a PNG sequence instead of a GIF
	// Default angular velocities in radians per tick.
	DefaultVelocity3 = Rot3{X: 0.005, Y: 0.01}
	DefaultVelocity4 = Rot4{XW: 0.01, YW: 0.007, ZW: 0.004}
)
