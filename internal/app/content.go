package app

import (
	"github.com/brazdilr/bardio/internal/ui/faq"
	"github.com/brazdilr/bardio/internal/ui/herobutton"
	"github.com/brazdilr/bardio/internal/ui/navmenu"
)

// Section anchors, in page order.
const (
	AnchorHome    = "home"
	AnchorSamples = "samples"
	AnchorAbout   = "about"
	AnchorFAQ     = "faq"
	AnchorContact = herobutton.OrderAnchor
)

const (
	headline = "Songs written for your moment"
	tagline  = "Personal songs for weddings, birthdays and everything between."
)

var navLinks = []navmenu.Link{
	{Label: "Home", Anchor: AnchorHome},
	{Label: "Samples", Anchor: AnchorSamples},
	{Label: "About", Anchor: AnchorAbout},
	{Label: "FAQ", Anchor: AnchorFAQ},
	{Label: "Contact", Anchor: AnchorContact},
}

const aboutText = `We write and record original songs from your stories.
Tell us who the song is for and what it should say; we take care of
the lyrics, the melody and the studio recording.`

var faqItems = []faq.Item{
	{
		Question: "How long does a song take?",
		Answer:   "Usually two to three weeks from the first conversation to the final recording.",
	},
	{
		Question: "Can I choose the style?",
		Answer:   "Yes. Pick one of the sample styles or describe your own and we will match it.",
	},
	{
		Question: "Do I get the rights to the song?",
		Answer:   "The song is yours for personal use, including weddings, parties and family videos.",
	},
	{
		Question: "What do you need from me?",
		Answer:   "Names, stories and a few words about the occasion. The contact form is a good start.",
	},
}

const footerText = "bardio · songs for every occasion"
