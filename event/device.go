package event

// Audio device event structure (event.adevice.*)
type AudioDeviceEvent Event

var audioDeviceLayout = layout{
	name:    "AudioDeviceEvent",
	accepts: AudioDeviceEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Recording", off: 20, kind: kindBool},
	},
}

func (AudioDeviceEvent) Accepts(t Type) bool {
	return t >= AudioDeviceAdded && t <= AudioDeviceFormatChanged
}

func (ad AudioDeviceEvent) Type() Type              { return Event(ad).Type() }
func (ad *AudioDeviceEvent) SetType(t Type) error   { return setType((*Event)(ad), t, &audioDeviceLayout) }
func (ad AudioDeviceEvent) Timestamp() uint64       { return Event(ad).Timestamp() }
func (ad *AudioDeviceEvent) SetTimestamp(ns uint64) { (*Event)(ad).SetTimestamp(ns) }
func (ad AudioDeviceEvent) String() string          { return audioDeviceLayout.describe((*Event)(&ad)) }
func (ad AudioDeviceEvent) Which() uint32           { return hostByteOrder.Uint32(ad[16:20]) }
func (ad *AudioDeviceEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(ad[16:20], id) }

// Recording is false for playback devices.
func (ad AudioDeviceEvent) Recording() bool {
	return getBool(ad[20])
}

func (ad *AudioDeviceEvent) SetRecording(r bool) {
	putBool(&ad[20], r)
}

// Camera device event structure (event.cdevice.*)
type CameraDeviceEvent Event

var cameraDeviceLayout = layout{
	name:    "CameraDeviceEvent",
	accepts: CameraDeviceEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
	},
}

func (CameraDeviceEvent) Accepts(t Type) bool {
	return t >= CameraDeviceAdded && t <= CameraDeviceDenied
}

func (cd CameraDeviceEvent) Type() Type              { return Event(cd).Type() }
func (cd *CameraDeviceEvent) SetType(t Type) error   { return setType((*Event)(cd), t, &cameraDeviceLayout) }
func (cd CameraDeviceEvent) Timestamp() uint64       { return Event(cd).Timestamp() }
func (cd *CameraDeviceEvent) SetTimestamp(ns uint64) { (*Event)(cd).SetTimestamp(ns) }
func (cd CameraDeviceEvent) String() string          { return cameraDeviceLayout.describe((*Event)(&cd)) }
func (cd CameraDeviceEvent) Which() uint32           { return hostByteOrder.Uint32(cd[16:20]) }
func (cd *CameraDeviceEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(cd[16:20], id) }

// Sensor event structure (event.sensor.*)
type SensorEvent Event

var sensorLayout = layout{
	name:    "SensorEvent",
	accepts: SensorEvent{}.Accepts,
	fields: []field{
		{name: "Which", off: 16, kind: kindU32},
		{name: "Data", off: 20, kind: kindF32Array, n: 6},
		{name: "SensorTimestamp", off: 48, kind: kindU64},
	},
}

func (SensorEvent) Accepts(t Type) bool {
	return t == SensorUpdate
}

func (se SensorEvent) Type() Type              { return Event(se).Type() }
func (se *SensorEvent) SetType(t Type) error   { return setType((*Event)(se), t, &sensorLayout) }
func (se SensorEvent) Timestamp() uint64       { return Event(se).Timestamp() }
func (se *SensorEvent) SetTimestamp(ns uint64) { (*Event)(se).SetTimestamp(ns) }
func (se SensorEvent) String() string          { return sensorLayout.describe((*Event)(&se)) }
func (se SensorEvent) Which() uint32           { return hostByteOrder.Uint32(se[16:20]) }
func (se *SensorEvent) SetWhich(id uint32)     { hostByteOrder.PutUint32(se[16:20], id) }

// Data holds up to six sensor values; their meaning depends on the sensor.
func (se SensorEvent) Data() [6]float32 {
	var d [6]float32
	for i := range d {
		d[i] = getF32(se[20+4*i:])
	}
	return d
}

func (se *SensorEvent) SetData(d [6]float32) {
	for i, v := range d {
		putF32(se[20+4*i:], v)
	}
}

func (se SensorEvent) SensorTimestamp() uint64 {
	return hostByteOrder.Uint64(se[48:56])
}

func (se *SensorEvent) SetSensorTimestamp(ns uint64) {
	hostByteOrder.PutUint64(se[48:56], ns)
}
