package domain

// airlineNames maps IATA carrier codes to display names.
var airlineNames = map[string]string{
	"AA": "American Airlines",
	"AC": "Air Canada",
	"AF": "Air France",
	"AI": "Air India",
	"AK": "AirAsia",
	"AM": "Aeroméxico",
	"AR": "Aerolíneas Argentinas",
	"AS": "Alaska Airlines",
	"AY": "Finnair",
	"AZ": "ITA Airways",
	"BA": "British Airways",
	"BR": "EVA Air",
	"CA": "Air China",
	"CI": "China Airlines",
	"CX": "Cathay Pacific",
	"CZ": "China Southern Airlines",
	"DL": "Delta Air Lines",
	"EK": "Emirates",
	"ET": "Ethiopian Airlines",
	"EY": "Etihad Airways",
	"FZ": "flydubai",
	"GA": "Garuda Indonesia",
	"GF": "Gulf Air",
	"HA": "Hawaiian Airlines",
	"HU": "Hainan Airlines",
	"IB": "Iberia",
	"JL": "Japan Airlines",
	"JQ": "Jetstar Airways",
	"KE": "Korean Air",
	"KL": "KLM Royal Dutch Airlines",
	"LH": "Lufthansa",
	"LX": "Swiss International Air Lines",
	"MH": "Malaysia Airlines",
	"MS": "EgyptAir",
	"MU": "China Eastern Airlines",
	"NH": "All Nippon Airways",
	"NZ": "Air New Zealand",
	"OS": "Austrian Airlines",
	"OZ": "Asiana Airlines",
	"PR": "Philippine Airlines",
	"QF": "Qantas",
	"QR": "Qatar Airways",
	"SA": "South African Airways",
	"SG": "SpiceJet",
	"SK": "Scandinavian Airlines",
	"SQ": "Singapore Airlines",
	"SU": "Aeroflot",
	"SV": "Saudia",
	"TG": "Thai Airways",
	"TK": "Turkish Airlines",
	"TP": "TAP Air Portugal",
	"UA": "United Airlines",
	"UL": "SriLankan Airlines",
	"VA": "Virgin Australia",
	"VN": "Vietnam Airlines",
	"VS": "Virgin Atlantic",
	"WY": "Oman Air",
	"QZ": "Indonesia AirAsia",
	"ID": "Batik Air",
	"JT": "Lion Air",
	"SJ": "Sriwijaya Air",
	"3K": "Jetstar Asia",
	"TR": "Scoot",
	"FD": "Thai AirAsia",
	"D7": "AirAsia X",
}

// AirlineName returns the display name for a carrier code, or the code
// itself when the carrier is not in the table.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return code
}
