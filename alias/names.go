package alias

import "go-imf-rate-provider/domain"

// feedNames spellings used by the IMF feed that differ from the English ISO names
var feedNames = map[string]domain.Currency{
	"U.K. Pound Sterling":        "GBP",
	"U.S. Dollar":                "USD",
	"Bahrain Dinar":              "BHD",
	"Botswana Pula":              "BWP",
	"Czech Koruna":               "CZK",
	"Icelandic Krona":            "ISK",
	"Korean Won":                 "KRW",
	"Rial Omani":                 "OMR",
	"Nuevo Sol":                  "PEN",
	"Qatar Riyal":                "QAR",
	"Saudi Arabian Riyal":        "SAR",
	"Sri Lanka Rupee":            "LKR",
	"Trinidad And Tobago Dollar": "TTD",
	"U.A.E. Dirham":              "AED",
	"Peso Uruguayo":              "UYU",
	"Bolivar Fuerte":             "VEF",
}

// isoNames English display names of ISO 4217 currencies
var isoNames = map[string]domain.Currency{
	"Afghan Afghani":                      "AFN",
	"Albanian Lek":                        "ALL",
	"Algerian Dinar":                      "DZD",
	"Angolan Kwanza":                      "AOA",
	"Argentine Peso":                      "ARS",
	"Armenian Dram":                       "AMD",
	"Australian Dollar":                   "AUD",
	"Azerbaijani Manat":                   "AZN",
	"Bahraini Dinar":                      "BHD",
	"Bangladeshi Taka":                    "BDT",
	"Belarusian Ruble":                    "BYN",
	"Bolivian Boliviano":                  "BOB",
	"Bosnia-Herzegovina Convertible Mark": "BAM",
	"Botswanan Pula":                      "BWP",
	"Brazilian Real":                      "BRL",
	"British Pound":                       "GBP",
	"British Pound Sterling":              "GBP",
	"Brunei Dollar":                       "BND",
	"Bulgarian Lev":                       "BGN",
	"Canadian Dollar":                     "CAD",
	"Chilean Peso":                        "CLP",
	"Chinese Yuan":                        "CNY",
	"Colombian Peso":                      "COP",
	"Costa Rican Colón":                   "CRC",
	"Croatian Kuna":                       "HRK",
	"Czech Republic Koruna":               "CZK",
	"Danish Krone":                        "DKK",
	"Dominican Peso":                      "DOP",
	"Egyptian Pound":                      "EGP",
	"Ethiopian Birr":                      "ETB",
	"Euro":                                "EUR",
	"Georgian Lari":                       "GEL",
	"Ghanaian Cedi":                       "GHS",
	"Guatemalan Quetzal":                  "GTQ",
	"Hong Kong Dollar":                    "HKD",
	"Hungarian Forint":                    "HUF",
	"Icelandic Króna":                     "ISK",
	"Indian Rupee":                        "INR",
	"Indonesian Rupiah":                   "IDR",
	"Iranian Rial":                        "IRR",
	"Iraqi Dinar":                         "IQD",
	"Israeli New Shekel":                  "ILS",
	"Israeli New Sheqel":                  "ILS",
	"Jamaican Dollar":                     "JMD",
	"Japanese Yen":                        "JPY",
	"Jordanian Dinar":                     "JOD",
	"Kazakhstani Tenge":                   "KZT",
	"Kenyan Shilling":                     "KES",
	"Kuwaiti Dinar":                       "KWD",
	"Lebanese Pound":                      "LBP",
	"Libyan Dinar":                        "LYD",
	"Malaysian Ringgit":                   "MYR",
	"Mauritian Rupee":                     "MUR",
	"Mexican Peso":                        "MXN",
	"Moroccan Dirham":                     "MAD",
	"Nepalese Rupee":                      "NPR",
	"New Zealand Dollar":                  "NZD",
	"Nigerian Naira":                      "NGN",
	"Norwegian Krone":                     "NOK",
	"Omani Rial":                          "OMR",
	"Pakistani Rupee":                     "PKR",
	"Paraguayan Guarani":                  "PYG",
	"Peruvian Sol":                        "PEN",
	"Peruvian Nuevo Sol":                  "PEN",
	"Philippine Peso":                     "PHP",
	"Polish Zloty":                        "PLN",
	"Qatari Rial":                         "QAR",
	"Romanian Leu":                        "RON",
	"Russian Ruble":                       "RUB",
	"Saudi Riyal":                         "SAR",
	"Serbian Dinar":                       "RSD",
	"Singapore Dollar":                    "SGD",
	"South African Rand":                  "ZAR",
	"South Korean Won":                    "KRW",
	"Sri Lankan Rupee":                    "LKR",
	"Swedish Krona":                       "SEK",
	"Swiss Franc":                         "CHF",
	"Taiwan Dollar":                       "TWD",
	"New Taiwan Dollar":                   "TWD",
	"Tanzanian Shilling":                  "TZS",
	"Thai Baht":                           "THB",
	"Trinidad and Tobago Dollar":          "TTD",
	"Tunisian Dinar":                      "TND",
	"Turkish Lira":                        "TRY",
	"Ugandan Shilling":                    "UGX",
	"Ukrainian Hryvnia":                   "UAH",
	"United Arab Emirates Dirham":         "AED",
	"Uruguayan Peso":                      "UYU",
	"US Dollar":                           "USD",
	"Uzbekistani Som":                     "UZS",
	"Venezuelan Bolívar":                  "VEF",
	"Vietnamese Dong":                     "VND",
	"Zambian Kwacha":                      "ZMW",
}
