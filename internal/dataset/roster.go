package dataset

var roster = []string{
	"AFGHANISTAN", "ALBANIA", "ALGERIA", "ANDORRA", "ANGOLA", "ANTIGUA AND BARBUDA", "ARGENTINA",
	"ARMENIA", "AUSTRALIA", "AUSTRIA", "AZERBAIJAN", "BAHAMAS", "BAHRAIN", "BANGLADESH", "BARBADOS",
	"BELARUS", "BELGIUM", "BELIZE", "BENIN", "BHUTAN", "BOLIVIA", "BOSNIA AND HERZEGOVINA", "BOTSWANA",
	"BRAZIL", "BRUNEI", "BULGARIA", "BURKINA FASO", "BURUNDI", "CABO VERDE", "CAMBODIA", "CAMEROON",
	"CANADA", "CENTRAL AFRICAN REPUBLIC", "CHAD", "CHILE", "CHINA", "COLOMBIA", "COMOROS", "CONGO",
	"COSTA RICA", "CROATIA", "CUBA", "CYPRUS", "CZECH REPUBLIC", "DEMOCRATIC REPUBLIC OF THE CONGO",
	"DENMARK", "DJIBOUTI", "DOMINICA", "DOMINICAN REPUBLIC", "ECUADOR", "EGYPT", "EL SALVADOR",
	"EQUATORIAL GUINEA", "ERITREA", "ESTONIA", "ESWATINI", "ETHIOPIA", "FIJI", "FINLAND", "FRANCE",
	"GABON", "GAMBIA", "GEORGIA", "GERMANY", "GHANA", "GREECE", "GRENADA", "GUATEMALA", "GUINEA",
	"GUINEA-BISSAU", "GUYANA", "HAITI", "HONDURAS", "HUNGARY", "ICELAND", "INDIA", "INDONESIA",
	"IRAN", "IRAQ", "IRELAND", "ISRAEL", "ITALY", "JAMAICA", "JAPAN", "JORDAN", "KAZAKHSTAN",
	"KENYA", "KIRIBATI", "KUWAIT", "KYRGYZSTAN", "LAOS", "LATVIA", "LEBANON", "LESOTHO", "LIBERIA",
	"LIBYA", "LIECHTENSTEIN", "LITHUANIA", "LUXEMBOURG", "MADAGASCAR", "MALAWI", "MALAYSIA",
	"MALDIVES", "MALI", "MALTA", "MARSHALL ISLANDS", "MAURITANIA", "MAURITIUS", "MEXICO",
	"MICRONESIA", "MOLDOVA", "MONACO", "MONGOLIA", "MONTENEGRO", "MOROCCO", "MOZAMBIQUE", "MYANMAR",
	"NAMIBIA", "NAURU", "NEPAL", "NETHERLANDS", "NEW ZEALAND", "NICARAGUA", "NIGER", "NIGERIA",
	"NORTH KOREA", "NORTH MACEDONIA", "NORWAY", "OMAN", "PAKISTAN", "PALAU", "PALESTINE", "PANAMA",
	"PAPUA NEW GUINEA", "PARAGUAY", "PERU", "PHILIPPINES", "POLAND", "PORTUGAL", "QATAR", "ROMANIA",
	"RUSSIA", "RWANDA", "SAINT KITTS AND NEVIS", "SAINT LUCIA", "SAINT VINCENT AND THE GRENADINES",
	"SAMOA", "SAN MARINO", "SAO TOME AND PRINCIPE", "SAUDI ARABIA", "SENEGAL", "SERBIA", "SEYCHELLES",
	"SIERRA LEONE", "SINGAPORE", "SLOVAKIA", "SLOVENIA", "SOLOMON ISLANDS", "SOMALIA", "SOUTH AFRICA",
	"SOUTH KOREA", "SOUTH SUDAN", "SPAIN", "SRI LANKA", "SUDAN", "SURINAME", "SWEDEN", "SWITZERLAND",
	"SYRIA", "TAIWAN", "TAJIKISTAN", "TANZANIA", "THAILAND", "TIMOR-LESTE", "TOGO", "TONGA",
	"TRINIDAD AND TOBAGO", "TUNISIA", "TURKEY", "TURKMENISTAN", "TUVALU", "UGANDA", "UKRAINE",
	"UNITED ARAB EMIRATES", "UNITED KINGDOM", "UNITED STATES", "URUGUAY", "UZBEKISTAN", "VANUATU",
	"VATICAN CITY", "VENEZUELA", "VIETNAM", "YEMEN", "ZAMBIA", "ZIMBABWE",
}

// populations maps a roster name to its approximate population in millions.
// Roster entries without a value here get a random population at generation time.
var populations = map[string]float64{
	"CHINA": 1444, "INDIA": 1408, "UNITED STATES": 331, "INDONESIA": 273, "PAKISTAN": 225,
	"BRAZIL": 214, "NIGERIA": 211, "BANGLADESH": 166, "RUSSIA": 146, "MEXICO": 129,
	"JAPAN": 126, "ETHIOPIA": 117, "PHILIPPINES": 111, "EGYPT": 102, "VIETNAM": 97,
	"DEMOCRATIC REPUBLIC OF THE CONGO": 90, "TURKEY": 84, "IRAN": 84, "GERMANY": 83, "THAILAND": 70,
	"UNITED KINGDOM": 68, "FRANCE": 65, "ITALY": 60, "SOUTH AFRICA": 60, "TANZANIA": 60,
	"MYANMAR": 54, "KENYA": 54, "SOUTH KOREA": 51, "COLOMBIA": 51, "SPAIN": 47,
	"ARGENTINA": 45, "UGANDA": 45, "ALGERIA": 44, "SUDAN": 44, "UKRAINE": 44,
	"IRAQ": 41, "AFGHANISTAN": 39, "POLAND": 38, "CANADA": 38, "MOROCCO": 37,
	"SAUDI ARABIA": 35, "UZBEKISTAN": 34, "PERU": 33, "MALAYSIA": 33, "ANGOLA": 33,
	"MOZAMBIQUE": 31, "GHANA": 31, "YEMEN": 30, "NEPAL": 29, "VENEZUELA": 28,
	"MADAGASCAR": 28, "CAMEROON": 27, "CÔTE D'IVOIRE": 27, "NORTH KOREA": 26,
	"AUSTRALIA": 26, "NIGER": 25, "SRI LANKA": 21, "BURKINA FASO": 21, "MALI": 20,
	"ROMANIA": 19, "CHILE": 19, "MALAWI": 19, "KAZAKHSTAN": 19, "ZAMBIA": 19,
	"GUATEMALA": 18, "ECUADOR": 18, "NETHERLANDS": 17, "SYRIA": 17, "CAMBODIA": 17,
	"SENEGAL": 17, "CHAD": 16, "SOMALIA": 16, "ZIMBABWE": 15, "GUINEA": 13,
	"RWANDA": 13, "BENIN": 12, "BURUNDI": 12, "TUNISIA": 12, "BOLIVIA": 12,
	"BELGIUM": 12, "HAITI": 11, "JORDAN": 10, "DOMINICAN REPUBLIC": 11,
	"CUBA": 11, "SOUTH SUDAN": 11, "SWEDEN": 10, "CZECH REPUBLIC": 11,
	"GREECE": 10, "PORTUGAL": 10, "AZERBAIJAN": 10, "HUNGARY": 10,
	"UNITED ARAB EMIRATES": 10, "BELARUS": 9, "ISRAEL": 9, "TAJIKISTAN": 10,
	"AUSTRIA": 9, "SWITZERLAND": 9, "PAPUA NEW GUINEA": 9, "SERBIA": 9,
	"PARAGUAY": 7, "LAOS": 7, "LIBYA": 7, "BULGARIA": 7, "LEBANON": 7,
	"NICARAGUA": 7, "KYRGYZSTAN": 7, "EL SALVADOR": 7, "TURKMENISTAN": 6,
	"SINGAPORE": 6, "DENMARK": 6, "FINLAND": 6, "SLOVAKIA": 5, "NORWAY": 5,
	"CONGO": 6, "COSTA RICA": 5, "PALESTINE": 5, "OMAN": 5, "LIBERIA": 5,
	"IRELAND": 5, "NEW ZEALAND": 5, "CENTRAL AFRICAN REPUBLIC": 5,
	"MAURITANIA": 5, "PANAMA": 4, "KUWAIT": 4, "CROATIA": 4, "GEORGIA": 4,
	"MOLDOVA": 4, "ERITREA": 4, "URUGUAY": 3, "BOSNIA AND HERZEGOVINA": 3,
	"MONGOLIA": 3, "ARMENIA": 3, "JAMAICA": 3, "QATAR": 3, "ALBANIA": 3,
	"LITHUANIA": 3, "NAMIBIA": 3, "GAMBIA": 2, "BOTSWANA": 2, "GABON": 2,
	"LESOTHO": 2, "SLOVENIA": 2, "GUINEA-BISSAU": 2, "LATVIA": 2,
	"BAHRAIN": 2, "NORTH MACEDONIA": 2, "TRINIDAD AND TOBAGO": 1,
	"ESTONIA": 1, "MAURITIUS": 1, "CYPRUS": 1, "ESWATINI": 1, "DJIBOUTI": 1,
	"FIJI": 1, "COMOROS": 1, "GUYANA": 1, "BHUTAN": 1, "SOLOMON ISLANDS": 1,
	"MONTENEGRO": 1, "LUXEMBOURG": 1, "SURINAME": 1, "CABO VERDE": 1,
	"MICRONESIA": 0.1, "MALTA": 0.5, "BRUNEI": 0.4, "BELIZE": 0.4,
	"BAHAMAS": 0.4, "ICELAND": 0.4, "VANUATU": 0.3, "BARBADOS": 0.3,
	"SAO TOME AND PRINCIPE": 0.2, "SAMOA": 0.2, "SAINT LUCIA": 0.2,
	"KIRIBATI": 0.1, "GRENADA": 0.1, "TONGA": 0.1, "SEYCHELLES": 0.1,
	"ANTIGUA AND BARBUDA": 0.1, "ANDORRA": 0.1, "DOMINICA": 0.1,
	"MARSHALL ISLANDS": 0.1, "SAINT KITTS AND NEVIS": 0.1,
	"MONACO": 0.04, "LIECHTENSTEIN": 0.04, "SAN MARINO": 0.03,
	"PALAU": 0.02, "NAURU": 0.01, "TUVALU": 0.01, "VATICAN CITY": 0.001,
}

// Roster returns a copy of the fixed list of countries covered by the generator.
func Roster() []string {
	return append([]string(nil), roster...)
}

// Population returns the built-in population of country in millions.
func Population(country string) (float64, bool) {
	p, ok := populations[country]
	return p, ok
}

func copyPopulations() map[string]float64 {
	out := make(map[string]float64, len(populations))
	for k, v := range populations {
		out[k] = v
	}
	return out
}
