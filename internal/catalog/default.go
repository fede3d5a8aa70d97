package catalog

const sampleBase = "https://yfoqiowdqqusnvbkyqhk.supabase.co/storage/v1/object/public/Ukazky-pisni/"

// Category keys of the embedded reel.
const (
	Pop      = "pop"
	Acoustic = "acoustic"
	Children = "children"
	Wedding  = "wedding"
)

func sample(n string) string {
	return sampleBase + "ukazka-" + n + ".mp3"
}

// Default returns the embedded sample reel. The studio publishes three sample
// files; each category plays them in its own rotation.
func Default() *Catalog {
	return New(
		Category{Key: Pop, Tracks: []Track{
			{Title: "Pop song #1", Locator: sample("1")},
			{Title: "Pop song #2", Locator: sample("2")},
			{Title: "Pop song #3", Locator: sample("3")},
		}},
		Category{Key: Acoustic, Tracks: []Track{
			{Title: "Acoustic song #1", Locator: sample("1")},
			{Title: "Acoustic song #2", Locator: sample("2")},
			{Title: "Acoustic song #3", Locator: sample("3")},
		}},
		Category{Key: Children, Tracks: []Track{
			{Title: "Children's song #1", Locator: sample("3")},
			{Title: "Children's song #2", Locator: sample("1")},
			{Title: "Children's song #3", Locator: sample("2")},
		}},
		Category{Key: Wedding, Tracks: []Track{
			{Title: "Wedding song #1", Locator: sample("2")},
			{Title: "Wedding song #2", Locator: sample("3")},
			{Title: "Wedding song #3", Locator: sample("1")},
		}},
	)
}

// Label returns the display name of a category key.
func Label(key string) string {
	switch key {
	case Pop:
		return "Pop"
	case Acoustic:
		return "Acoustic"
	case Children:
		return "Children's"
	case Wedding:
		return "Wedding"
	}
	if key == "" {
		return ""
	}
	// Custom categories: capitalize the first letter.
	b := []byte(key)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
