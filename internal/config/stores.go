package config

import "github.com/wakuli/retail-analytics-api/internal/domain"

// Stores is the static registry of Wakuli retail locations. The OOH entry is
// the overhead pseudo-store used for chain-wide costs.
func Stores() domain.Registry {
	return domain.Registry{
		"LIN":   {Code: "LIN", Name: "Linnaeusstraat", Address: "Linnaeusstraat 237a", City: "Amsterdam", Lat: 52.3579, Lon: 4.9274, SQM: 65, Opened: "2021-03"},
		"JPH":   {Code: "JPH", Name: "Jan Pieter Heijestraat", Address: "Jan Pieter Heijestraat 76", City: "Amsterdam", Lat: 52.3627, Lon: 4.8583, SQM: 55, Opened: "2021-06"},
		"HAP":   {Code: "HAP", Name: "Haarlemmerplein", Address: "Haarlemmerplein 43", City: "Amsterdam", Lat: 52.3847, Lon: 4.8819, SQM: 70, Opened: "2021-09"},
		"WAG":   {Code: "WAG", Name: "Wagenaarstraat", Address: "Wagenaarstraat 70H", City: "Amsterdam", Lat: 52.3615, Lon: 4.9285, SQM: 48, Opened: "2022-01"},
		"AMS":   {Code: "AMS", Name: "Amstelveenseweg", Address: "Amstelveenseweg 210", City: "Amsterdam", Lat: 52.3489, Lon: 4.8658, SQM: 60, Opened: "2022-03"},
		"VIJZ":  {Code: "VIJZ", Name: "Vijzelgracht", Address: "Vijzelgracht 37H", City: "Amsterdam", Lat: 52.3630, Lon: 4.8908, SQM: 75, Opened: "2022-06"},
		"TWIJN": {Code: "TWIJN", Name: "Twijnstraat", Address: "Twijnstraat 1", City: "Utrecht", Lat: 52.0894, Lon: 5.1180, SQM: 50, Opened: "2022-09"},
		"ZIEK":  {Code: "ZIEK", Name: "Ziekerstraat", Address: "Ziekerstraat 169", City: "Nijmegen", Lat: 51.8463, Lon: 5.8642, SQM: 55, Opened: "2023-01"},
		"WOU":   {Code: "WOU", Name: "Van Woustraat", Address: "Van Woustraat 54", City: "Amsterdam", Lat: 52.3530, Lon: 4.9040, SQM: 58, Opened: "2023-03"},
		"NOB":   {Code: "NOB", Name: "Nobelstraat", Address: "Nobelstraat 143", City: "Utrecht", Lat: 52.0907, Lon: 5.1230, SQM: 62, Opened: "2023-05"},
		"JAC":   {Code: "JAC", Name: "Jacob van Campenstraat", Address: "Tweede Jacob van Campenstraat 1", City: "Amsterdam", Lat: 52.3505, Lon: 4.8925, SQM: 45, Opened: "2023-07"},
		"BAJES": {Code: "BAJES", Name: "Bajes", Address: "H.J.E. Wenckebachweg 48", City: "Amsterdam", Lat: 52.3456, Lon: 4.9356, SQM: 80, Opened: "2023-09"},
		"FAH":   {Code: "FAH", Name: "Fahrenheitstraat", Address: "Fahrenheitstraat 496", City: "Den Haag", Lat: 52.0705, Lon: 4.2805, SQM: 52, Opened: "2023-11"},
		"MEENT": {Code: "MEENT", Name: "Meent", Address: "Meent 3A", City: "Rotterdam", Lat: 51.9225, Lon: 4.4792, SQM: 68, Opened: "2024-01"},
		"LUST":  {Code: "LUST", Name: "Lusthofstraat", Address: "Lusthofstraat 54B", City: "Rotterdam", Lat: 51.9178, Lon: 4.4935, SQM: 50, Opened: "2024-03"},
		"VIS":   {Code: "VIS", Name: "Visstraat", Address: "Visstraat 4", City: "Den Bosch", Lat: 51.6878, Lon: 5.3069, SQM: 55, Opened: "2024-06"},
		"THER":  {Code: "THER", Name: "Theresiastraat", Address: "Theresiastraat 108", City: "Den Haag", Lat: 52.0763, Lon: 4.3015, SQM: 60, Opened: "2024-08"},
		"PIET":  {Code: "PIET", Name: "Piet Heinstraat", Address: "Piet Heinstraat 84", City: "Den Haag", Lat: 52.0716, Lon: 4.3132, SQM: 50, Opened: "2024-10"},
		"HAS":   {Code: "HAS", Name: "Haarlemmerstraat", Address: "Haarlemmerstraat 127", City: "Leiden", Lat: 52.1601, Lon: 4.4894, SQM: 55, Opened: "2025-01"},
		"STOEL": {Code: "STOEL", Name: "Stoeldraaierstraat", Address: "Stoeldraaierstraat 70", City: "Groningen", Lat: 53.2171, Lon: 6.5613, SQM: 58, Opened: "2025-03"},
		"OOH":   {Code: "OOH", Name: "Overhead (All Stores)", Address: "Central Office", City: "Amsterdam", Lat: 52.3676, Lon: 4.9041, SQM: 0, Opened: "2021-01"},
	}
}

// StoreAnalyticIDs maps store codes to the analytic account IDs used in the
// ERP's analytic_distribution field on journal items.
var StoreAnalyticIDs = map[string]int{
	"LIN": 17046, "JPH": 17047, "HAP": 17048, "WAG": 17049, "AMS": 17050,
	"VIJZ": 17051, "TWIJN": 17052, "ZIEK": 17053, "WOU": 17054, "NOB": 17055,
	"JAC": 22869, "BAJES": 28826, "FAH": 18393, "MEENT": 53942, "LUST": 51003,
	"VIS": 58577, "THER": 58498, "PIET": 58578, "HAS": 58596, "STOEL": 58603,
	"OOH": 19878,
}

// StoreForAnalyticID resolves an ERP analytic account ID back to a store
// code. Unknown IDs are attributed to overhead.
func StoreForAnalyticID(id int) string {
	for code, analyticID := range StoreAnalyticIDs {
		if analyticID == id {
			return code
		}
	}
	return domain.OverheadCode
}
