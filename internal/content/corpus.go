package content

// builtinCorpus carries editorial copy for the common services of each
// supported trade. Keys are slug-normalized service names; {city} in bodies
// and local notes is substituted at resolve time.
var builtinCorpus = map[string]map[string]Copy{
	"plombier": {
		"debouchage-canalisation": {
			Title: "Débouchage de canalisation",
			Body: "## Débouchage de canalisation à {city}\n\n" +
				"Canalisation bouchée, évacuation lente, remontées d'odeurs : nos plombiers interviennent avec un matériel professionnel adapté à chaque situation. " +
				"Furet électrique, pompe à haute pression ou caméra d'inspection, nous identifions la cause du bouchon avant d'agir pour éviter toute récidive.\n\n" +
				"L'intervention se fait sans casse dans la grande majorité des cas, avec un diagnostic transparent et un tarif annoncé avant le début des travaux.",
			Process: []string{
				"Diagnostic par caméra d'inspection",
				"Débouchage au furet ou à haute pression",
				"Contrôle de l'écoulement",
				"Conseils d'entretien",
			},
			Benefits: []string{
				"Intervention en moins de 2h",
				"Sans casse dans 95% des cas",
				"Tarif annoncé avant intervention",
				"Garantie résultat",
			},
			Guarantee: "Résultat garanti ou intervention complémentaire offerte.",
			LocalNote: "Équipe disponible 7j/7 à {city} pour les urgences de plomberie.",
		},
		"recherche-de-fuite": {
			Title: "Recherche de fuite",
			Body: "## Recherche de fuite à {city}\n\n" +
				"Une fuite non traitée peut causer des dégâts importants et alourdir vos factures. " +
				"Nous localisons les fuites sans destruction grâce à la caméra thermique, au gaz traceur et à l'écoute acoustique, puis nous réparons dans la foulée lorsque c'est possible.\n\n" +
				"Un rapport de recherche vous est remis, accepté par les assurances dans le cadre d'un dégât des eaux.",
			Process: []string{
				"Inspection thermique et acoustique",
				"Localisation précise de la fuite",
				"Rapport pour votre assurance",
				"Réparation immédiate si possible",
			},
			Benefits: []string{
				"Détection sans destruction",
				"Rapport accepté par les assurances",
				"Matériel de détection dernière génération",
			},
			Guarantee: "Fuite localisée ou recherche remboursée.",
			LocalNote: "Déplacement rapide partout à {city}.",
		},
		"installation-chauffe-eau": {
			Title: "Installation de chauffe-eau",
			Body: "## Installation de chauffe-eau à {city}\n\n" +
				"Remplacement ou première installation, nous posons tous les types de chauffe-eau : électrique, thermodynamique ou gaz. " +
				"Nous vous conseillons sur la capacité et la technologie adaptées à votre logement et à votre consommation, puis nous reprenons l'ancien appareil pour recyclage.",
			Process: []string{
				"Étude de vos besoins",
				"Dépose de l'ancien appareil",
				"Pose et mise en service",
				"Reprise et recyclage",
			},
			Benefits: []string{
				"Pose sous 48h",
				"Toutes marques et capacités",
				"Mise en conformité incluse",
			},
			Guarantee: "Installation garantie 2 ans pièces et main d'œuvre.",
			LocalNote: "Chauffe-eau en stock pour dépannage express à {city}.",
		},
	},
	"electricien": {
		"mise-aux-normes": {
			Title: "Mise aux normes électriques",
			Body: "## Mise aux normes électriques à {city}\n\n" +
				"Un tableau vétuste ou une installation ancienne présente des risques réels. " +
				"Nous réalisons le diagnostic complet de votre installation, remplaçons le tableau, installons les différentiels requis et délivrons l'attestation Consuel lorsque nécessaire.\n\n" +
				"Toutes nos interventions respectent la norme NF C 15-100 en vigueur.",
			Process: []string{
				"Diagnostic de l'installation",
				"Devis détaillé poste par poste",
				"Remplacement du tableau et des protections",
				"Attestation de conformité",
			},
			Benefits: []string{
				"Conformité NF C 15-100",
				"Attestation Consuel",
				"Intervention sans coupure prolongée",
			},
			Guarantee: "Installation certifiée conforme, garantie décennale.",
			LocalNote: "Électriciens certifiés intervenant sur tout {city}.",
		},
		"depannage-electrique": {
			Title: "Dépannage électrique",
			Body: "## Dépannage électrique à {city}\n\n" +
				"Panne de courant, disjoncteur qui saute, prise qui chauffe : nous identifions l'origine du problème et réparons durablement. " +
				"Nos véhicules sont équipés pour résoudre la majorité des pannes dès la première visite.",
			Process: []string{
				"Prise en charge téléphonique",
				"Recherche de panne",
				"Réparation immédiate",
				"Vérification de sécurité",
			},
			Benefits: []string{
				"Urgences 7j/7",
				"Panne résolue dès la première visite",
				"Devis accepté avant travaux",
			},
			Guarantee: "Dépannage garanti 1 an.",
			LocalNote: "Intervention d'urgence en moins d'une heure à {city}.",
		},
	},
	"menuisier": {
		"pose-de-parquet": {
			Title: "Pose de parquet",
			Body: "## Pose de parquet à {city}\n\n" +
				"Parquet massif, contrecollé ou stratifié, nous posons tous les formats en pose clouée, collée ou flottante. " +
				"Préparation du support, calepinage, finitions et plinthes : chaque chantier est livré prêt à vivre.",
			Process: []string{
				"Visite technique et calepinage",
				"Préparation du support",
				"Pose et finitions",
				"Réception du chantier",
			},
			Benefits: []string{
				"Bois issus de forêts gérées",
				"Finitions soignées",
				"Chantier propre",
			},
			Guarantee: "Pose garantie 5 ans.",
			LocalNote: "Atelier de menuiserie situé près de {city}.",
		},
		"fabrication-sur-mesure": {
			Title: "Fabrication sur mesure",
			Body: "## Menuiserie sur mesure à {city}\n\n" +
				"Bibliothèques, dressings, escaliers ou agencements complets : nous dessinons et fabriquons en atelier des pièces uniques adaptées à votre intérieur, puis nous les posons chez vous.",
			Process: []string{
				"Prise de cotes et croquis",
				"Validation des plans 3D",
				"Fabrication en atelier",
				"Pose et ajustements",
			},
			Benefits: []string{
				"Plans 3D avant fabrication",
				"Essences de bois au choix",
				"Fabrication locale",
			},
			Guarantee: "Ouvrages garantis 10 ans.",
			LocalNote: "Visite conseil offerte à {city} et alentours.",
		},
	},
	"peintre": {
		"peinture-interieure": {
			Title: "Peinture intérieure",
			Body: "## Peinture intérieure à {city}\n\n" +
				"Murs, plafonds, boiseries : nous préparons soigneusement les supports avant d'appliquer des peintures de qualité professionnelle. " +
				"Conseil couleur inclus pour harmoniser vos pièces, protection complète du mobilier et chantier rendu propre chaque soir.",
			Process: []string{
				"Protection des sols et du mobilier",
				"Préparation des supports",
				"Application en deux couches",
				"Nettoyage de fin de chantier",
			},
			Benefits: []string{
				"Conseil couleur offert",
				"Peintures écolabellisées",
				"Chantier propre au quotidien",
			},
			Guarantee: "Finitions garanties 2 ans.",
			LocalNote: "Échantillons testés à domicile à {city}.",
		},
	},
	"macon": {
		"extension-maison": {
			Title: "Extension de maison",
			Body: "## Extension de maison à {city}\n\n" +
				"Agrandissez votre surface habitable avec une extension maçonnée traditionnelle. " +
				"Nous gérons le gros œuvre de A à Z : fondations, élévation des murs, charpente et mise hors d'eau, en coordination avec votre architecte si besoin.",
			Process: []string{
				"Étude de faisabilité",
				"Fondations et élévation",
				"Mise hors d'eau hors d'air",
				"Réception avec garanties",
			},
			Benefits: []string{
				"Gros œuvre de A à Z",
				"Accompagnement administratif",
				"Garantie décennale",
			},
			Guarantee: "Garantie décennale sur tout le gros œuvre.",
			LocalNote: "Réalisations visitables autour de {city}.",
		},
	},
}
