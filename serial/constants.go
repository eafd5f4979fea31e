package serial

// Field type codes identify the serializer for each field on the wire.
// The high bit of the tag byte is reserved and masked off before lookup.
const (
	FieldByte8     byte = 0  // one byte, rendered as two-digit hex
	FieldShort16   byte = 1  // signed 16-bit integer
	FieldInt32     byte = 2  // signed 32-bit integer
	FieldLong64    byte = 3  // signed 64-bit integer
	FieldFloat32   byte = 4  // IEEE 754 single
	FieldDouble64  byte = 5  // IEEE 754 double
	FieldBoolean8  byte = 6  // one byte, zero is false
	FieldChar8     byte = 7  // 8-bit character
	FieldChar16    byte = 8  // 16-bit character (UTF-16 code unit)
	FieldString8   byte = 9  // length-prefixed 8-bit string
	FieldString16  byte = 10 // length-prefixed 16-bit string

	FieldByte8Array    byte = 11
	FieldShort16Array  byte = 12
	FieldInt32Array    byte = 13
	FieldLong64Array   byte = 14
	FieldFloat32Array  byte = 15
	FieldDouble64Array byte = 16
	FieldBoolean8Array byte = 17

	FieldByte8Matrix    byte = 18
	FieldShort16Matrix  byte = 19
	FieldInt32Matrix    byte = 20
	FieldLong64Matrix   byte = 21
	FieldFloat32Matrix  byte = 22
	FieldDouble64Matrix byte = 23
	FieldBoolean8Matrix byte = 24

	// Unit-bearing scalars and collections: a 2-byte unit descriptor
	// (unit type code, display code) precedes the element data.
	FieldFloatUnit        byte = 25
	FieldDoubleUnit       byte = 26
	FieldFloatUnitArray   byte = 27
	FieldDoubleUnitArray  byte = 28
	FieldFloatUnitMatrix  byte = 29
	FieldDoubleUnitMatrix byte = 30

	// Column-vector arrays carry one unit descriptor per column.
	FieldFloatUnitColumnArray  byte = 31
	FieldDoubleUnitColumnArray byte = 32

	FieldString8Array   byte = 33
	FieldString16Array  byte = 34
	FieldString8Matrix  byte = 35
	FieldString16Matrix byte = 36
)

// Unit type codes for the built-in unit catalog.
const (
	UnitDimensionless byte = 0
	UnitAcceleration  byte = 1
	UnitAngle         byte = 2
	UnitLength        byte = 3
	UnitMass          byte = 4
	UnitDuration      byte = 5
	UnitSpeed         byte = 6
	UnitTemperature   byte = 7
	UnitForce         byte = 8
	UnitEnergy        byte = 9
	UnitPower         byte = 10
)
