package gallery

// Milestone is a hand-curated timeline entry. MediaAssets references scanned
// asset ids by position, so the linked media shifts with the gallery
// contents.
type Milestone struct {
	ID          int    `json:"id"`
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Discipline  string `json:"discipline"`
	MediaAssets []int  `json:"media_assets"`
}

// Milestones returns the curated agency timeline, attaching two gallery
// assets to each era.
func Milestones(assets []Asset) []Milestone {
	ids := make([]int, len(assets))
	for i, asset := range assets {
		ids[i] = asset.ID
	}

	slice := func(from, to int) []int {
		if from > len(ids) {
			from = len(ids)
		}
		if to > len(ids) {
			to = len(ids)
		}
		return ids[from:to]
	}

	return []Milestone{
		{
			ID:          1,
			Year:        2008,
			Title:       "Premiers grands spectacles",
			Description: "Débuts professionnels entre danse urbaine et scène contemporaine.",
			Discipline:  "dance",
			MediaAssets: slice(0, 2),
		},
		{
			ID:          2,
			Year:        2012,
			Title:       "Accrobaties et tournées européennes",
			Description: "Intégration d'acrobaties aériennes et collaborations internationales.",
			Discipline:  "acrobatics",
			MediaAssets: slice(2, 4),
		},
		{
			ID:          3,
			Year:        2016,
			Title:       "Cascadeur et direction artistique",
			Description: "Participation à des productions scéniques et télévisées.",
			Discipline:  "stunts",
			MediaAssets: slice(4, 6),
		},
		{
			ID:          4,
			Year:        2020,
			Title:       "Transmission et coaching",
			Description: "Coaching chorégraphique et ateliers pour équipes créatives.",
			Discipline:  "teaching",
			MediaAssets: slice(6, 8),
		},
		{
			ID:          5,
			Year:        2024,
			Title:       "Lancement de l'agence événementielle",
			Description: "Création d'expériences immersives pour marques et événements.",
			Discipline:  "event",
			MediaAssets: slice(8, 10),
		},
	}
}
