package wellness

import "fmt"

// statusCopy genera el texto en lenguaje simple asociado al status general.
func statusCopy(status Status, softWeeks int, hasParasiteSignal bool) StatusCopy {
	switch status {
	case StatusMonitor:
		plural := ""
		if softWeeks != 1 {
			plural = "s"
		}
		return StatusCopy{
			Title:    "Keep an eye on this",
			Subtitle: fmt.Sprintf("We've noticed some changes in %d week%s.", softWeeks, plural),
			Advice: []string{
				"Consider adding more fiber to their diet (like pumpkin or sweet potato)",
				"Make sure they're getting plenty of fresh water",
				"Track these patterns for the next few days",
			},
		}

	case StatusAttention:
		subtitle := "There are some patterns here that deserve closer attention."
		if hasParasiteSignal {
			subtitle = "We're seeing some concerning patterns that may need veterinary attention."
		}
		return StatusCopy{
			Title:    "Needs attention",
			Subtitle: subtitle,
			Advice: []string{
				"Consider scheduling a vet visit to rule out any underlying issues",
				"Keep detailed notes about their diet, behavior, and any symptoms",
				"Monitor closely and contact your vet if patterns persist",
			},
			CTA: &CTA{Label: "Consult a Vet", Href: "/consult"},
		}

	default:
		return StatusCopy{
			Title:    "All good",
			Subtitle: "Your dog's waste patterns look healthy and normal.",
			Advice: []string{
				"Keep up the great work with their diet and exercise!",
				"Continue regular monitoring to stay on top of any changes.",
			},
		}
	}
}
