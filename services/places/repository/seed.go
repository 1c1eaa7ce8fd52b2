package repository

import "github.com/mpawlak/wedrownik/internal/pkg/models"

func coord(v float64) *float64 {
	return &v
}

// DefaultCatalog is the built-in set of Polish points of interest loaded on
// first boot when PLACES_SEED_CATALOG is enabled.
func DefaultCatalog() []models.Place {
	return []models.Place{
		{ID: 1, Name: "Zamek Królewski na Wawelu", Latitude: coord(50.0540), Longitude: coord(19.9355), Category: "historic", Description: "Dawna rezydencja królów Polski i symbol polskiej państwowości, położony na wzgórzu Wawelskim w Krakowie."},
		{ID: 2, Name: "Rynek Główny w Krakowie", Latitude: coord(50.0614), Longitude: coord(19.9372), Category: "urban", Description: "Jeden z największych średniowiecznych rynków w Europie, otoczony zabytkowymi kamienicami i kościołami, w tym Kościołem Mariackim."},
		{ID: 3, Name: "Kopalnia Soli \"Wieliczka\"", Latitude: coord(49.9828), Longitude: coord(20.0540), Category: "historic", Description: "Jedna z najstarszych kopalń soli na świecie, wpisana na listę UNESCO, z podziemnymi kaplicami i rzeźbami solnymi."},
		{ID: 4, Name: "Auschwitz-Birkenau", Latitude: coord(50.0278), Longitude: coord(19.2039), Category: "historic", Description: "Miejsce Pamięci i Muzeum Auschwitz-Birkenau, były niemiecki nazistowski obóz koncentracyjny i zagłady."},
		{ID: 5, Name: "Pałac Kultury i Nauki", Latitude: coord(52.2319), Longitude: coord(21.0067), Category: "landmark", Description: "Najwyższy budynek w Polsce, symbol Warszawy, oferujący taras widokowy i mieszczący teatry, muzea i kina."},
		{ID: 6, Name: "Stare Miasto w Warszawie", Latitude: coord(52.2497), Longitude: coord(21.0122), Category: "historic", Description: "Zrekonstruowane po II wojnie światowej historyczne centrum Warszawy, wpisane na listę UNESCO."},
		{ID: 7, Name: "Muzeum Powstania Warszawskiego", Latitude: coord(52.2328), Longitude: coord(20.9810), Category: "museum", Description: "Nowoczesne muzeum poświęcone Powstaniu Warszawskiemu z 1944 roku."},
		{ID: 8, Name: "Zamek w Malborku", Latitude: coord(54.0396), Longitude: coord(19.0280), Category: "historic", Description: "Największy zamek ceglany na świecie, dawna siedziba wielkich mistrzów zakonu krzyżackiego, wpisany na listę UNESCO."},
		{ID: 9, Name: "Stare Miasto w Gdańsku", Latitude: coord(54.3480), Longitude: coord(18.6530), Category: "historic", Description: "Historyczne centrum Gdańska z Długim Targiem, Fontanną Neptuna i Żurawiem."},
		{ID: 10, Name: "Molo w Sopocie", Latitude: coord(54.4465), Longitude: coord(18.5799), Category: "landmark", Description: "Najdłuższe drewniane molo w Europie, popularne miejsce spacerowe i rekreacyjne."},
		{ID: 11, Name: "Hala Stulecia we Wrocławiu", Latitude: coord(51.1068), Longitude: coord(17.0772), Category: "architecture", Description: "Modernistyczna hala widowiskowo-sportowa, wpisana na listę UNESCO, otoczona Pergolą i Fontanną Multimedialną."},
		{ID: 12, Name: "Rynek we Wrocławiu", Latitude: coord(51.1099), Longitude: coord(17.0324), Category: "urban", Description: "Jeden z największych rynków w Polsce, z charakterystycznymi krasnalami i zabytkowym Ratuszem."},
		{ID: 13, Name: "Panorama Racławicka", Latitude: coord(51.1100), Longitude: coord(17.0450), Category: "museum", Description: "Monumentalne malowidło przedstawiające bitwę pod Racławicami, eksponowane w specjalnie zbudowanej rotundzie."},
		{ID: 14, Name: "Tatrzański Park Narodowy", Latitude: coord(49.2500), Longitude: coord(19.9833), Category: "nature", Description: "Park narodowy obejmujący polską część Tatr, najwyższych gór między Alpami a Kaukazem, z Morskim Okiem i Doliną Kościeliską."},
		{ID: 15, Name: "Krupówki w Zakopanem", Latitude: coord(49.2940), Longitude: coord(19.9530), Category: "urban", Description: "Reprezentacyjna ulica Zakopanego, pełna restauracji, sklepów i regionalnych straganów."},
		{ID: 16, Name: "Puszcza Białowieska", Latitude: coord(52.7550), Longitude: coord(23.8310), Category: "nature", Description: "Ostatni fragment pierwotnego lasu nizinnego w Europie, dom dla największej populacji żubra europejskiego, wpisana na listę UNESCO."},
		{ID: 17, Name: "Zamek Książ", Latitude: coord(50.8425), Longitude: coord(16.2919), Category: "historic", Description: "Trzeci co do wielkości zamek w Polsce, położony na skalnym cyplu, z bogatą historią i tajemniczymi podziemiami."},
		{ID: 18, Name: "Stare Miasto w Toruniu", Latitude: coord(53.0100), Longitude: coord(18.6040), Category: "historic", Description: "Średniowieczny zespół miejski, miejsce narodzin Mikołaja Kopernika, słynący z pierników i gotyckiej architektury, wpisany na listę UNESCO."},
		{ID: 19, Name: "Kanał Elbląski", Latitude: coord(53.9000), Longitude: coord(19.6667), Category: "engineering", Description: "Unikalny w skali światowej system pochylni, pozwalający statkom pokonywać różnice poziomów wody na lądzie."},
		{ID: 20, Name: "Słowiński Park Narodowy", Latitude: coord(54.7500), Longitude: coord(17.3333), Category: "nature", Description: "Park narodowy z ruchomymi wydmami, jeziorami przymorskimi i unikalną florą i fauną."},
		{ID: 21, Name: "Zamek Czocha", Latitude: coord(51.0289), Longitude: coord(15.3039), Category: "historic", Description: "Malowniczo położony zamek nad Jeziorem Leśniańskim, często wykorzystywany jako plan filmowy."},
		{ID: 22, Name: "Błędne Skały", Latitude: coord(50.4780), Longitude: coord(16.3000), Category: "nature", Description: "Labirynt skalny w Górach Stołowych, tworzący niezwykłe formacje i wąskie przejścia."},
		{ID: 23, Name: "Bazylika Mariacka w Gdańsku", Latitude: coord(54.3498), Longitude: coord(18.6536), Category: "architecture", Description: "Jeden z największych ceglanych kościołów na świecie, dominujący nad panoramą Gdańska."},
		{ID: 24, Name: "Łazienki Królewskie w Warszawie", Latitude: coord(52.2128), Longitude: coord(21.0322), Category: "park", Description: "Zespół pałacowo-ogrodowy z Pałacem na Wyspie, Amfiteatrem i pomnikiem Chopina, popularne miejsce spacerów."},
		{ID: 25, Name: "Ojcowski Park Narodowy", Latitude: coord(50.2050), Longitude: coord(19.8250), Category: "nature", Description: "Najmniejszy park narodowy w Polsce, znany z malowniczych dolin, jaskiń i ostańców skalnych, w tym Maczugi Herkulesa."},
	}
}
