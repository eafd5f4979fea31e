package serial

// standardSerializers is the built-in field type table, indexed by code.
var standardSerializers = buildSerializerTable([]Serializer{
	{FieldByte8, "Byte8", KindFixedPrimitive, ElemInt8},
	{FieldShort16, "Short16", KindFixedPrimitive, ElemInt16},
	{FieldInt32, "Int32", KindFixedPrimitive, ElemInt32},
	{FieldLong64, "Long64", KindFixedPrimitive, ElemInt64},
	{FieldFloat32, "Float32", KindFixedPrimitive, ElemFloat32},
	{FieldDouble64, "Double64", KindFixedPrimitive, ElemFloat64},
	{FieldBoolean8, "Boolean8", KindFixedPrimitive, ElemBool},
	{FieldChar8, "Char8", KindFixedPrimitive, ElemChar8},
	{FieldChar16, "Char16", KindFixedPrimitive, ElemChar16},
	{FieldString8, "String8", KindStringScalar, ElemChar8},
	{FieldString16, "String16", KindStringScalar, ElemChar16},

	{FieldByte8Array, "Byte8Array", KindPlainArray, ElemInt8},
	{FieldShort16Array, "Short16Array", KindPlainArray, ElemInt16},
	{FieldInt32Array, "Int32Array", KindPlainArray, ElemInt32},
	{FieldLong64Array, "Long64Array", KindPlainArray, ElemInt64},
	{FieldFloat32Array, "Float32Array", KindPlainArray, ElemFloat32},
	{FieldDouble64Array, "Double64Array", KindPlainArray, ElemFloat64},
	{FieldBoolean8Array, "Boolean8Array", KindPlainArray, ElemBool},

	{FieldByte8Matrix, "Byte8Matrix", KindPlainMatrix, ElemInt8},
	{FieldShort16Matrix, "Short16Matrix", KindPlainMatrix, ElemInt16},
	{FieldInt32Matrix, "Int32Matrix", KindPlainMatrix, ElemInt32},
	{FieldLong64Matrix, "Long64Matrix", KindPlainMatrix, ElemInt64},
	{FieldFloat32Matrix, "Float32Matrix", KindPlainMatrix, ElemFloat32},
	{FieldDouble64Matrix, "Double64Matrix", KindPlainMatrix, ElemFloat64},
	{FieldBoolean8Matrix, "Boolean8Matrix", KindPlainMatrix, ElemBool},

	{FieldFloatUnit, "FloatUnit", KindUnitScalar, ElemFloat32},
	{FieldDoubleUnit, "DoubleUnit", KindUnitScalar, ElemFloat64},
	{FieldFloatUnitArray, "FloatUnitArray", KindUnitArray, ElemFloat32},
	{FieldDoubleUnitArray, "DoubleUnitArray", KindUnitArray, ElemFloat64},
	{FieldFloatUnitMatrix, "FloatUnitMatrix", KindUnitMatrix, ElemFloat32},
	{FieldDoubleUnitMatrix, "DoubleUnitMatrix", KindUnitMatrix, ElemFloat64},

	{FieldFloatUnitColumnArray, "FloatUnitColumnArray", KindColumnVectorArray, ElemFloat32},
	{FieldDoubleUnitColumnArray, "DoubleUnitColumnArray", KindColumnVectorArray, ElemFloat64},

	{FieldString8Array, "String8Array", KindStringArray, ElemChar8},
	{FieldString16Array, "String16Array", KindStringArray, ElemChar16},
	{FieldString8Matrix, "String8Matrix", KindStringMatrix, ElemChar8},
	{FieldString16Matrix, "String16Matrix", KindStringMatrix, ElemChar16},
})

func buildSerializerTable(list []Serializer) map[byte]*Serializer {
	m := make(map[byte]*Serializer, len(list))
	for i := range list {
		m[list[i].Code] = &list[i]
	}
	return m
}

// standardUnits maps unit type code, then display code, to a unit.
var standardUnits = map[byte]map[byte]Unit{
	UnitDimensionless: {
		0: {Name: "unit", Symbol: ""},
	},
	UnitAcceleration: {
		0: {Name: "meter per second squared", Symbol: "m/s2"},
	},
	UnitAngle: {
		0: {Name: "radian", Symbol: "rad"},
		1: {Name: "degree", Symbol: "deg"},
	},
	UnitLength: {
		0: {Name: "meter", Symbol: "m"},
		1: {Name: "kilometer", Symbol: "km"},
		2: {Name: "centimeter", Symbol: "cm"},
		3: {Name: "millimeter", Symbol: "mm"},
		4: {Name: "mile", Symbol: "mi"},
		5: {Name: "foot", Symbol: "ft"},
	},
	UnitMass: {
		0: {Name: "kilogram", Symbol: "kg"},
		1: {Name: "gram", Symbol: "g"},
		2: {Name: "pound", Symbol: "lb"},
	},
	UnitDuration: {
		0: {Name: "second", Symbol: "s"},
		1: {Name: "millisecond", Symbol: "ms"},
		2: {Name: "minute", Symbol: "min"},
		3: {Name: "hour", Symbol: "h"},
	},
	UnitSpeed: {
		0: {Name: "meter per second", Symbol: "m/s"},
		1: {Name: "kilometer per hour", Symbol: "km/h"},
		2: {Name: "mile per hour", Symbol: "mi/h"},
	},
	UnitTemperature: {
		0: {Name: "kelvin", Symbol: "K"},
		1: {Name: "degree Celsius", Symbol: "degC"},
	},
	UnitForce: {
		0: {Name: "newton", Symbol: "N"},
	},
	UnitEnergy: {
		0: {Name: "joule", Symbol: "J"},
		1: {Name: "kilowatt hour", Symbol: "kWh"},
	},
	UnitPower: {
		0: {Name: "watt", Symbol: "W"},
		1: {Name: "kilowatt", Symbol: "kW"},
	},
}

// StandardCatalog is the built-in catalog of field types and units.
type StandardCatalog struct{}

// Standard returns the built-in catalog.
func Standard() StandardCatalog {
	return StandardCatalog{}
}

// Serializer returns the built-in descriptor for code, or nil.
func (StandardCatalog) Serializer(code byte) *Serializer {
	return standardSerializers[code]
}

// Unit returns the built-in unit for the code pair, or nil.
func (StandardCatalog) Unit(unitType, displayCode byte) *Unit {
	displays, ok := standardUnits[unitType]
	if !ok {
		return nil
	}
	u, ok := displays[displayCode]
	if !ok {
		return nil
	}
	return &u
}
