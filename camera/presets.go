package camera

// Camera indexes of the NAO V5 head pivot.
const (
	NAOV5TopCameraIndex = iota
	NAOV5BottomCameraIndex
)

var (
	// NAOV5TopCamera is the forehead camera of a NAO V5.
	NAOV5TopCamera = Camera{
		Height:       6.364,
		CenterOffset: 5.871,
		VDirection:   1.2,
		VFov:         47.64,
		HFov:         60.97,
	}

	// NAOV5BottomCamera is the mouth camera of a NAO V5.
	NAOV5BottomCamera = Camera{
		Height:       1.774,
		CenterOffset: 5.071,
		VDirection:   39.7,
		VFov:         47.64,
		HFov:         60.97,
	}
)

// NAOV5HeadHeight is the height of the neck joint of a standing NAO V5.
const NAOV5HeadHeight = 41.7

// NAOV5Head returns the head pivot of a standing NAO V5 looking straight ahead.
func NAOV5Head() CameraPivot {
	return NewCameraPivot(0, 0, NAOV5HeadHeight, NAOV5TopCamera, NAOV5BottomCamera)
}
