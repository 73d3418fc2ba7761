package units

// Factor values are part of the compatibility contract; displayed results
// elsewhere depend on them exactly.
var tables = []Table{
	{
		Family: "length",
		Base:   "m",
		Units: []Definition{
			{Key: "m", DisplayName: "Meter", Factor: 1},
			{Key: "km", DisplayName: "Kilometer", Factor: 1000},
			{Key: "cm", DisplayName: "Centimeter", Factor: 0.01},
			{Key: "mm", DisplayName: "Millimeter", Factor: 0.001},
			{Key: "um", DisplayName: "Micrometer", Factor: 1e-6},
			{Key: "nm", DisplayName: "Nanometer", Factor: 1e-9},
			{Key: "mi", DisplayName: "Mile", Factor: 1609.34},
			{Key: "yd", DisplayName: "Yard", Factor: 0.9144},
			{Key: "ft", DisplayName: "Foot", Factor: 0.3048},
			{Key: "in", DisplayName: "Inch", Factor: 0.0254},
			{Key: "nmi", DisplayName: "Nautical Mile", Factor: 1852},
		},
	},
	{
		Family: "weight",
		Base:   "kg",
		Units: []Definition{
			{Key: "kg", DisplayName: "Kilogram", Factor: 1},
			{Key: "g", DisplayName: "Gram", Factor: 0.001},
			{Key: "mg", DisplayName: "Milligram", Factor: 1e-6},
			{Key: "t", DisplayName: "Metric Ton", Factor: 1000},
			{Key: "lb", DisplayName: "Pound", Factor: 0.453592},
			{Key: "oz", DisplayName: "Ounce", Factor: 0.0283495},
			{Key: "st", DisplayName: "Stone", Factor: 6.35029},
		},
	},
	{
		Family: "time",
		Base:   "s",
		Units: []Definition{
			{Key: "s", DisplayName: "Second", Factor: 1},
			{Key: "ms", DisplayName: "Millisecond", Factor: 0.001},
			{Key: "min", DisplayName: "Minute", Factor: 60},
			{Key: "h", DisplayName: "Hour", Factor: 3600},
			{Key: "day", DisplayName: "Day", Factor: 86400},
			{Key: "week", DisplayName: "Week", Factor: 604800},
			{Key: "month", DisplayName: "Month", Factor: 2.628e6},
			{Key: "year", DisplayName: "Year", Factor: 3.154e7},
			{Key: "decade", DisplayName: "Decade", Factor: 3.154e8},
			{Key: "century", DisplayName: "Century", Factor: 3.154e9},
		},
	},
	{
		Family: "speed",
		Base:   "m/s",
		Units: []Definition{
			{Key: "m/s", DisplayName: "Meter per Second", Factor: 1},
			{Key: "km/h", DisplayName: "Kilometer per Hour", Factor: 0.277778},
			{Key: "mph", DisplayName: "Mile per Hour", Factor: 0.44704},
			{Key: "ft/s", DisplayName: "Foot per Second", Factor: 0.3048},
			{Key: "knot", DisplayName: "Knot", Factor: 0.514444},
		},
	},
	{
		Family: "area",
		Base:   "m2",
		Units: []Definition{
			{Key: "m2", DisplayName: "Square Meter", Factor: 1},
			{Key: "km2", DisplayName: "Square Kilometer", Factor: 1e6},
			{Key: "cm2", DisplayName: "Square Centimeter", Factor: 0.0001},
			{Key: "ha", DisplayName: "Hectare", Factor: 10000},
			{Key: "acre", DisplayName: "Acre", Factor: 4046.86},
			{Key: "mi2", DisplayName: "Square Mile", Factor: 2.59e6},
			{Key: "yd2", DisplayName: "Square Yard", Factor: 0.836127},
			{Key: "ft2", DisplayName: "Square Foot", Factor: 0.092903},
			{Key: "in2", DisplayName: "Square Inch", Factor: 0.00064516},
		},
	},
	{
		Family: "volume",
		Base:   "l",
		Units: []Definition{
			{Key: "l", DisplayName: "Liter", Factor: 1},
			{Key: "ml", DisplayName: "Milliliter", Factor: 0.001},
			{Key: "m3", DisplayName: "Cubic Meter", Factor: 1000},
			{Key: "gal", DisplayName: "US Gallon", Factor: 3.78541},
			{Key: "qt", DisplayName: "US Quart", Factor: 0.946353},
			{Key: "pt", DisplayName: "US Pint", Factor: 0.473176},
			{Key: "cup", DisplayName: "US Cup", Factor: 0.236588},
			{Key: "floz", DisplayName: "US Fluid Ounce", Factor: 0.0295735},
			{Key: "tbsp", DisplayName: "Tablespoon", Factor: 0.0147868},
			{Key: "tsp", DisplayName: "Teaspoon", Factor: 0.00492892},
		},
	},
	{
		Family: "data",
		Base:   "B",
		Units: []Definition{
			{Key: "bit", DisplayName: "Bit", Factor: 0.125},
			{Key: "B", DisplayName: "Byte", Factor: 1},
			{Key: "KB", DisplayName: "Kilobyte", Factor: 1024},
			{Key: "MB", DisplayName: "Megabyte", Factor: 1048576},
			{Key: "GB", DisplayName: "Gigabyte", Factor: 1073741824},
			{Key: "TB", DisplayName: "Terabyte", Factor: 1099511627776},
			{Key: "PB", DisplayName: "Petabyte", Factor: 1125899906842624},
		},
	},
}
