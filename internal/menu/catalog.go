package menu

var items = []Item{
	{ID: "c1", Name: "Pitcher’s Paloma", Desc: "Tequila, grapefrukt, lime, sodavatten.", Price: 149, Category: Cocktails, Tags: []string{"Fräsch", "Citrus"}},
	{ID: "c2", Name: "Espresso Martini", Desc: "Vodka, kaffe, kaffelikör.", Price: 155, Category: Cocktails, Tags: []string{"Kaffe", "Klassiker"}},
	{ID: "c3", Name: "Gin & Tonic", Desc: "Gin, tonic, citrus (välj garnish).", Price: 139, Category: Cocktails, Tags: []string{"Klassiker"}},
	{ID: "c4", Name: "Margarita", Desc: "Tequila, triple sec, lime. (Saltkant vid önskemål)", Price: 149, Category: Cocktails, Tags: []string{"Citrus"}},
	{ID: "c5", Name: "Whiskey Sour", Desc: "Bourbon, citron, sockerlag. (Äggvita valfritt)", Price: 149, Category: Cocktails, Tags: []string{"Sour"}},
	{ID: "c6", Name: "Mojito", Desc: "Rom, mynta, lime, socker, sodavatten.", Price: 145, Category: Cocktails, Tags: []string{"Fräsch"}},
	{ID: "c7", Name: "Aperol Spritz", Desc: "Aperol, prosecco, sodavatten.", Price: 139, Category: Cocktails, Tags: []string{"Bubbligt"}},
	{ID: "c8", Name: "Negroni", Desc: "Gin, Campari, söt vermouth.", Price: 149, Category: Cocktails, Tags: []string{"Bitter", "Klassiker"}},
	{ID: "c9", Name: "Old Fashioned", Desc: "Bourbon/rye, bitters, socker, apelsinzest.", Price: 155, Category: Cocktails, Tags: []string{"Klassiker"}},
	{ID: "c10", Name: "Pornstar Martini", Desc: "Vaniljvodka, passionsfrukt, lime. (Shot prosecco vid sidan)", Price: 159, Category: Cocktails, Tags: []string{"Söt", "Populär"}},
	{ID: "c11", Name: "Dark ’n’ Stormy", Desc: "Mörk rom, ginger beer, lime.", Price: 149, Category: Cocktails, Tags: []string{"Kryddig"}},
	{ID: "c12", Name: "Tom Collins", Desc: "Gin, citron, socker, sodavatten.", Price: 139, Category: Cocktails, Tags: []string{"Fräsch"}},

	{ID: "b1", Name: "Lager (40cl)", Desc: "Krispig och lätt.", Price: 79, Category: Beer, Tags: []string{"Lager"}},
	{ID: "b2", Name: "Hazy IPA (40cl)", Desc: "Humlig, fruktig, lätt bitter.", Price: 89, Category: Beer, Tags: []string{"IPA"}},
	{ID: "b3", Name: "West Coast IPA (40cl)", Desc: "Torr, tydlig beska, citrus & tall.", Price: 92, Category: Beer, Tags: []string{"IPA", "Bitter"}},
	{ID: "b4", Name: "Pilsner (40cl)", Desc: "Klassisk, frisk med lätt beska.", Price: 82, Category: Beer, Tags: []string{"Pils"}},
	{ID: "b5", Name: "Wheat Beer (50cl)", Desc: "Mjuk, fruktig och lätt kryddig.", Price: 99, Category: Beer, Tags: []string{"Veteöl"}},
	{ID: "b6", Name: "Stout (33cl)", Desc: "Mörk, rostad, toner av kaffe & choklad.", Price: 95, Category: Beer, Tags: []string{"Stout"}},
	{ID: "b7", Name: "Sour Ale (33cl)", Desc: "Syrlig och frisk, fruktiga toner.", Price: 98, Category: Beer, Tags: []string{"Sour"}},
	{ID: "b8", Name: "Alkoholfri Lager (33cl)", Desc: "Lätt och krispig, 0.0%.", Price: 59, Category: Beer, Tags: []string{"0.0%"}},

	{ID: "w1", Name: "Pinot Noir (glas)", Desc: "Lättare rött – bärigt och mjukt.", Price: 119, Category: Wine, Tags: []string{"Rött"}},
	{ID: "w2", Name: "Tempranillo (glas)", Desc: "Medelfylligt rött – mörka bär och kryddighet.", Price: 119, Category: Wine, Tags: []string{"Rött"}},
	{ID: "w3", Name: "Cabernet Sauvignon (glas)", Desc: "Fylligt rött – tanniner, svarta vinbär.", Price: 129, Category: Wine, Tags: []string{"Rött"}},
	{ID: "w4", Name: "Sauvignon Blanc (glas)", Desc: "Friskt vitt – citrus, krusbär, mineral.", Price: 119, Category: Wine, Tags: []string{"Vitt"}},
	{ID: "w5", Name: "Chardonnay (glas)", Desc: "Rundare vitt – äpple, stenfrukt, lätt ek.", Price: 125, Category: Wine, Tags: []string{"Vitt"}},
	{ID: "w6", Name: "Riesling (glas)", Desc: "Aromatiskt vitt – lime, persika, frisk syra.", Price: 119, Category: Wine, Tags: []string{"Vitt"}},
	{ID: "w7", Name: "Rosé (glas)", Desc: "Torr rosé – friskt, bärigt.", Price: 115, Category: Wine, Tags: []string{"Rosé"}},
	{ID: "w8", Name: "Prosecco (glas)", Desc: "Bubbligt – friskt och lätt.", Price: 129, Category: Wine, Tags: []string{"Bubbel"}},

	{ID: "m1", Name: "Nojito", Desc: "Mynta, lime, socker, sodavatten.", Price: 95, Category: Mocktails, Tags: []string{"Alkoholfri"}},
	{ID: "m2", Name: "Virgin Paloma", Desc: "Grapefrukt, lime, sodavatten, salt rim valfritt.", Price: 95, Category: Mocktails, Tags: []string{"Citrus", "Alkoholfri"}},
	{ID: "m3", Name: "Berry Fizz", Desc: "Bärmix, citron, sodavatten.", Price: 95, Category: Mocktails, Tags: []string{"Bär", "Alkoholfri"}},
	{ID: "m4", Name: "Ginger Mule (0%)", Desc: "Ginger beer, lime, mynta.", Price: 95, Category: Mocktails, Tags: []string{"Kryddig", "Alkoholfri"}},

	{ID: "s1", Name: "Sour Shot", Desc: "Syrlig shot (fråga personal om dagens).", Price: 69, Category: Shots},
	{ID: "s2", Name: "Tequila (shot)", Desc: "Klassisk tequila. (Salt & lime vid önskemål)", Price: 79, Category: Shots, Tags: []string{"Klassiker"}},
	{ID: "s3", Name: "Fireball (shot)", Desc: "Kanelig och söt – serveras kall.", Price: 75, Category: Shots, Tags: []string{"Söt"}},
	{ID: "s4", Name: "Fernet (shot)", Desc: "Kryddig, bitter – för den modige.", Price: 79, Category: Shots, Tags: []string{"Bitter"}},
}
