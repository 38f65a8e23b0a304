package catalog

var deData = localeData{
	firstNames: []string{
		"Anna", "Lukas", "Marie", "Felix", "Sophie", "Jonas", "Lena", "Paul", "Clara", "Maximilian",
		"Hannah", "Elias", "Mia", "Leon", "Emilia", "Finn", "Greta", "Moritz", "Johanna", "Till",
	},
	lastNames: []string{
		"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker", "Schulz", "Hoffmann",
		"Koch", "Richter", "Klein", "Wolf", "Schröder", "Neumann", "Braun", "Zimmermann", "Hartmann", "Krüger",
	},
	titleStarts: []string{
		"Der Schatten der", "Das Lied der", "Die Stadt der", "Das Haus der",
		"Die Chronik der", "Das Echo der", "Die Rückkehr der", "Am Ende der",
	},
	titleNouns: []string{
		"Nacht", "Sterne", "Wölfe", "Erinnerung", "Stille", "Zeit",
		"Wellen", "Träume", "Berge", "Dämmerung", "Wahrheit", "Lichter",
	},
	publisherForms: []string{
		"%s Verlag", "Verlagsgruppe %s", "%s & Söhne", "Edition %s", "%s Bücher GmbH",
	},
	reviews: []string{
		"Ein wunderbares Buch, das ich nicht aus der Hand legen konnte.",
		"Die Figuren wirken lebendig und glaubwürdig.",
		"Leider zieht sich die Handlung in der Mitte etwas.",
		"Sprachlich brillant und voller überraschender Wendungen.",
		"Ich habe mehr erwartet, aber das Ende hat mich versöhnt.",
		"Eine klare Empfehlung für lange Winterabende.",
		"Der Schreibstil ist gewöhnungsbedürftig, aber lohnend.",
		"Spannend bis zur letzten Seite.",
	},
}

var frData = localeData{
	firstNames: []string{
		"Camille", "Louis", "Chloé", "Hugo", "Léa", "Jules", "Manon", "Arthur", "Inès", "Gabriel",
		"Zoé", "Théo", "Juliette", "Raphaël", "Alice", "Nathan", "Sarah", "Lucas", "Émilie", "Antoine",
	},
	lastNames: []string{
		"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand", "Leroy", "Moreau",
		"Simon", "Laurent", "Lefebvre", "Michel", "Garcia", "David", "Bertrand", "Roux", "Vincent", "Fournier",
	},
	titleStarts: []string{
		"Le Secret de", "La Maison de", "L'Ombre de", "Le Chant de",
		"Les Jardins de", "La Mémoire de", "Le Dernier Hiver de", "Un Été à",
	},
	titleNouns: []string{
		"la nuit", "l'océan", "la forêt", "Montmartre", "la rivière",
		"mon père", "la lune", "Saint-Malo", "l'oubli", "la ville",
	},
	publisherForms: []string{
		"Éditions %s", "%s et Fils", "Librairie %s", "Maison %s", "Presses %s",
	},
	reviews: []string{
		"Un roman captivant du début à la fin.",
		"Les personnages sont attachants et finement dessinés.",
		"J'ai trouvé le rythme un peu lent au milieu.",
		"Une écriture élégante qui donne envie de tout relire.",
		"La fin m'a laissé sans voix.",
		"Je le recommande sans hésiter.",
		"Une belle surprise, malgré quelques longueurs.",
		"L'atmosphère est merveilleusement rendue.",
	},
}

var jaData = localeData{
	firstNames: []string{
		"陽翔", "結衣", "蓮", "葵", "湊", "陽菜", "大翔", "凛",
		"悠真", "美咲", "翔太", "さくら", "健太", "美月", "拓海",
	},
	lastNames: []string{
		"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村",
		"小林", "加藤", "吉田", "山田", "佐々木", "松本", "井上",
	},
	titleNouns: []string{
		"夜", "海", "森", "月", "星", "風", "雪", "記憶",
		"約束", "図書館", "庭", "街", "影", "夢", "桜",
	},
	publisherForms: []string{
		"%s出版", "%s書房", "%s社", "%s文庫",
	},
	publisherWords: []string{
		"青空", "白鷺", "朝日", "星海", "若葉", "銀河", "紅葉", "千歳",
	},
	reviews: []string{
		"最後まで一気に読んでしまいました。",
		"登場人物がとても魅力的です。",
		"中盤は少し長く感じました。",
		"美しい文章に心を打たれました。",
		"結末には本当に驚かされました。",
		"友人にも勧めたい一冊です。",
		"静かな余韻が残る物語でした。",
		"期待以上の面白さでした。",
	},
}
