package email

import "fmt"

// TimelineReadyEmail builds the notification sent to a property owner
// when the external renderer reports a finished video.
func TimelineReadyEmail(to, propertyName, templateName string) *Email {
	return &Email{
		To:      []string{to},
		Subject: fmt.Sprintf("Your video for %s is ready", propertyName),
		Body: fmt.Sprintf(
			"Good news!\n\nThe video generated from the %q template for %s has finished rendering "+
				"and is ready to download from your dashboard.\n",
			templateName, propertyName),
	}
}

// LowConfidenceEmail warns an owner that a generated timeline matched
// poorly and the library probably needs more described content.
func LowConfidenceEmail(to, propertyName string) *Email {
	return &Email{
		To:      []string{to},
		Subject: fmt.Sprintf("More content needed for %s", propertyName),
		Body: fmt.Sprintf(
			"We generated a timeline for %s, but most template slots could not be matched "+
				"with confidence. Uploading more videos will improve the result.\n",
			propertyName),
	}
}
