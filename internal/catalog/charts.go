package catalog

// Standard size charts, in centimeters. Band ranges are contiguous so every
// plausible measurement falls inside exactly one band per measurement.
var defaultCatalog = newCatalog([]*Category{
	{
		Key:      "MENS_SHIRT",
		Name:     "Men's Shirt",
		Audience: AudienceMale,
		Bands: []SizeBand{
			{Label: "S", Ranges: map[string]Range{
				MeasurementChest:         {88, 94},
				MeasurementShoulderWidth: {42, 44.5},
			}},
			{Label: "M", Ranges: map[string]Range{
				MeasurementChest:         {94, 100},
				MeasurementShoulderWidth: {44.5, 47},
			}},
			{Label: "L", Ranges: map[string]Range{
				MeasurementChest:         {100, 106},
				MeasurementShoulderWidth: {47, 49.5},
			}},
			{Label: "XL", Ranges: map[string]Range{
				MeasurementChest:         {106, 112},
				MeasurementShoulderWidth: {49.5, 52},
			}},
			{Label: "XXL", Ranges: map[string]Range{
				MeasurementChest:         {112, 118},
				MeasurementShoulderWidth: {52, 54.5},
			}},
		},
	},
	{
		Key:      "WOMENS_TOP",
		Name:     "Women's Top",
		Audience: AudienceFemale,
		Bands: []SizeBand{
			{Label: "XS", Ranges: map[string]Range{
				MeasurementChest:         {78, 84},
				MeasurementShoulderWidth: {36, 38},
			}},
			{Label: "S", Ranges: map[string]Range{
				MeasurementChest:         {84, 90},
				MeasurementShoulderWidth: {38, 40},
			}},
			{Label: "M", Ranges: map[string]Range{
				MeasurementChest:         {90, 96},
				MeasurementShoulderWidth: {40, 42},
			}},
			{Label: "L", Ranges: map[string]Range{
				MeasurementChest:         {96, 102},
				MeasurementShoulderWidth: {42, 44},
			}},
			{Label: "XL", Ranges: map[string]Range{
				MeasurementChest:         {102, 108},
				MeasurementShoulderWidth: {44, 46},
			}},
		},
	},
	{
		Key:      "MENS_PANTS",
		Name:     "Men's Pants",
		Audience: AudienceMale,
		Bands: []SizeBand{
			{Label: "S", Ranges: map[string]Range{
				MeasurementWaist:  {75, 81},
				MeasurementHip:    {90, 96},
				MeasurementInseam: {76, 80},
			}},
			{Label: "M", Ranges: map[string]Range{
				MeasurementWaist:  {81, 87},
				MeasurementHip:    {96, 102},
				MeasurementInseam: {78, 82},
			}},
			{Label: "L", Ranges: map[string]Range{
				MeasurementWaist:  {87, 93},
				MeasurementHip:    {102, 108},
				MeasurementInseam: {80, 84},
			}},
			{Label: "XL", Ranges: map[string]Range{
				MeasurementWaist:  {93, 99},
				MeasurementHip:    {108, 114},
				MeasurementInseam: {82, 86},
			}},
			{Label: "XXL", Ranges: map[string]Range{
				MeasurementWaist:  {99, 105},
				MeasurementHip:    {114, 120},
				MeasurementInseam: {82, 86},
			}},
		},
	},
	{
		Key:      "WOMENS_PANTS",
		Name:     "Women's Pants",
		Audience: AudienceFemale,
		Bands: []SizeBand{
			{Label: "XS", Ranges: map[string]Range{
				MeasurementWaist:  {60, 66},
				MeasurementHip:    {84, 90},
				MeasurementInseam: {70, 74},
			}},
			{Label: "S", Ranges: map[string]Range{
				MeasurementWaist:  {66, 72},
				MeasurementHip:    {90, 96},
				MeasurementInseam: {72, 76},
			}},
			{Label: "M", Ranges: map[string]Range{
				MeasurementWaist:  {72, 78},
				MeasurementHip:    {96, 102},
				MeasurementInseam: {74, 78},
			}},
			{Label: "L", Ranges: map[string]Range{
				MeasurementWaist:  {78, 84},
				MeasurementHip:    {102, 108},
				MeasurementInseam: {76, 80},
			}},
			{Label: "XL", Ranges: map[string]Range{
				MeasurementWaist:  {84, 90},
				MeasurementHip:    {108, 114},
				MeasurementInseam: {76, 80},
			}},
		},
	},
	{
		Key:      "DRESS",
		Name:     "Dress",
		Audience: AudienceFemale,
		Bands: []SizeBand{
			{Label: "XS", Ranges: map[string]Range{
				MeasurementChest: {78, 84},
				MeasurementWaist: {60, 66},
				MeasurementHip:   {84, 90},
			}},
			{Label: "S", Ranges: map[string]Range{
				MeasurementChest: {84, 90},
				MeasurementWaist: {66, 72},
				MeasurementHip:   {90, 96},
			}},
			{Label: "M", Ranges: map[string]Range{
				MeasurementChest: {90, 96},
				MeasurementWaist: {72, 78},
				MeasurementHip:   {96, 102},
			}},
			{Label: "L", Ranges: map[string]Range{
				MeasurementChest: {96, 102},
				MeasurementWaist: {78, 84},
				MeasurementHip:   {102, 108},
			}},
			{Label: "XL", Ranges: map[string]Range{
				MeasurementChest: {102, 108},
				MeasurementWaist: {84, 90},
				MeasurementHip:   {108, 114},
			}},
		},
	},
})

// Default returns the built-in size-chart catalog.
func Default() *Catalog {
	return defaultCatalog
}
