package static

import "ftzops/internal/domain"

// seedBrowseNodes is the flat classification hierarchy. Chapters and headings
// carry a Code and Title; tariff lines carry an HTSCode and Description.
// Parentage is implicit through the chapter/heading/subheading prefix fields.
var seedBrowseNodes = []domain.BrowseNode{
	// Chapter 84: machinery
	{Type: domain.LevelChapter, Code: "84", Title: "Nuclear reactors, boilers, machinery and mechanical appliances", Level: 1},
	{Type: domain.LevelHeading, Code: "8407", Title: "Spark-ignition reciprocating internal combustion piston engines", Level: 2, Chapter: "84"},
	{Type: domain.LevelHeading, Code: "8414", Title: "Air or vacuum pumps, air or other gas compressors and fans", Level: 2, Chapter: "84"},
	{Type: domain.LevelHeading, Code: "8471", Title: "Automatic data processing machines and units thereof", Level: 2, Chapter: "84"},
	{Type: domain.LevelSubheading, Code: "847130", Title: "Portable automatic data processing machines, not more than 10 kg", Level: 3, Chapter: "84", Heading: "8471"},
	{Type: domain.LevelSubheading, Code: "847150", Title: "Processing units other than those of 8471.41 or 8471.49", Level: 3, Chapter: "84", Heading: "8471"},
	{Type: domain.LevelTariffLine, HTSCode: "8471.30.0100", Description: "Portable automatic data processing machines, weighing not more than 10 kg", Level: 4, Chapter: "84", Heading: "8471", Subheading: "847130"},
	{Type: domain.LevelTariffLine, HTSCode: "8471.50.0150", Description: "Processing units other than those of subheading 8471.41 or 8471.49", Level: 4, Chapter: "84", Heading: "8471", Subheading: "847150"},
	{Type: domain.LevelHeading, Code: "8473", Title: "Parts and accessories for machines of headings 8470 to 8472", Level: 2, Chapter: "84"},
	{Type: domain.LevelTariffLine, HTSCode: "8473.30.1180", Description: "Parts and accessories of automatic data processing machines", Level: 4, Chapter: "84", Heading: "8473", Subheading: "847330"},

	// Chapter 85: electrical machinery
	{Type: domain.LevelChapter, Code: "85", Title: "Electrical machinery and equipment and parts thereof", Level: 1},
	{Type: domain.LevelHeading, Code: "8501", Title: "Electric motors and generators", Level: 2, Chapter: "85"},
	{Type: domain.LevelHeading, Code: "8507", Title: "Electric storage batteries", Level: 2, Chapter: "85"},
	{Type: domain.LevelSubheading, Code: "850760", Title: "Lithium-ion batteries", Level: 3, Chapter: "85", Heading: "8507"},
	{Type: domain.LevelTariffLine, HTSCode: "8507.60.0020", Description: "Lithium-ion batteries", Level: 4, Chapter: "85", Heading: "8507", Subheading: "850760"},
	{Type: domain.LevelHeading, Code: "8517", Title: "Telephone sets, including smartphones; other transmission apparatus", Level: 2, Chapter: "85"},
	{Type: domain.LevelTariffLine, HTSCode: "8517.13.0000", Description: "Smartphones for cellular networks", Level: 4, Chapter: "85", Heading: "8517", Subheading: "851713"},
	{Type: domain.LevelHeading, Code: "8528", Title: "Monitors and projectors; television reception apparatus", Level: 2, Chapter: "85"},
	{Type: domain.LevelTariffLine, HTSCode: "8528.72.6420", Description: "Color television reception apparatus, LCD, over 34.29 cm", Level: 4, Chapter: "85", Heading: "8528", Subheading: "852872"},
	{Type: domain.LevelHeading, Code: "8542", Title: "Electronic integrated circuits", Level: 2, Chapter: "85"},
	{Type: domain.LevelSubheading, Code: "854231", Title: "Processors and controllers", Level: 3, Chapter: "85", Heading: "8542"},
	{Type: domain.LevelSubheading, Code: "854232", Title: "Memories", Level: 3, Chapter: "85", Heading: "8542"},
	{Type: domain.LevelTariffLine, HTSCode: "8542.31.0001", Description: "Electronic integrated circuits: processors and controllers", Level: 4, Chapter: "85", Heading: "8542", Subheading: "854231"},
	{Type: domain.LevelTariffLine, HTSCode: "8542.32.0041", Description: "Electronic integrated circuits: memories, DRAM", Level: 4, Chapter: "85", Heading: "8542", Subheading: "854232"},

	// Chapter 87: vehicles
	{Type: domain.LevelChapter, Code: "87", Title: "Vehicles other than railway or tramway rolling stock", Level: 1},
	{Type: domain.LevelHeading, Code: "8703", Title: "Motor cars and other motor vehicles for the transport of persons", Level: 2, Chapter: "87"},
	{Type: domain.LevelTariffLine, HTSCode: "8703.23.0190", Description: "Passenger motor vehicles, 1,500-3,000 cc", Level: 4, Chapter: "87", Heading: "8703", Subheading: "870323"},
	{Type: domain.LevelHeading, Code: "8708", Title: "Parts and accessories of motor vehicles", Level: 2, Chapter: "87"},
	{Type: domain.LevelTariffLine, HTSCode: "8708.29.5160", Description: "Parts and accessories of motor vehicle bodies, other", Level: 4, Chapter: "87", Heading: "8708", Subheading: "870829"},

	// Chapter 90: instruments
	{Type: domain.LevelChapter, Code: "90", Title: "Optical, photographic, measuring, checking, medical instruments", Level: 1},
	{Type: domain.LevelHeading, Code: "9018", Title: "Instruments and appliances used in medical or veterinary sciences", Level: 2, Chapter: "90"},
	{Type: domain.LevelTariffLine, HTSCode: "9018.90.8000", Description: "Instruments and appliances for medical or veterinary sciences, other", Level: 4, Chapter: "90", Heading: "9018", Subheading: "901890"},

	// Chapter 94: furniture
	{Type: domain.LevelChapter, Code: "94", Title: "Furniture; bedding, mattresses; lamps and lighting fittings", Level: 1},
	{Type: domain.LevelHeading, Code: "9403", Title: "Other furniture and parts thereof", Level: 2, Chapter: "94"},
	{Type: domain.LevelTariffLine, HTSCode: "9403.60.8081", Description: "Wooden furniture, other", Level: 4, Chapter: "94", Heading: "9403", Subheading: "940360"},
	{Type: domain.LevelHeading, Code: "9405", Title: "Luminaires and lighting fittings", Level: 2, Chapter: "94"},
	{Type: domain.LevelTariffLine, HTSCode: "9405.11.4010", Description: "Chandeliers and ceiling light fittings, LED, of base metal", Level: 4, Chapter: "94", Heading: "9405", Subheading: "940511"},

	// Chapter 95: toys and sports equipment
	{Type: domain.LevelChapter, Code: "95", Title: "Toys, games and sports requisites; parts and accessories", Level: 1},
	{Type: domain.LevelHeading, Code: "9503", Title: "Tricycles, scooters, dolls, other toys; puzzles", Level: 2, Chapter: "95"},
	{Type: domain.LevelTariffLine, HTSCode: "9503.00.0073", Description: "Toys representing animals or non-human creatures", Level: 4, Chapter: "95", Heading: "9503", Subheading: "950300"},
	{Type: domain.LevelHeading, Code: "9506", Title: "Articles and equipment for general physical exercise or sports", Level: 2, Chapter: "95"},
	{Type: domain.LevelTariffLine, HTSCode: "9506.62.4080", Description: "Inflatable balls, other", Level: 4, Chapter: "95", Heading: "9506", Subheading: "950662"},
}
