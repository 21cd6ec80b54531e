// Package prompt assembles the generation prompts. The tag contract here
// must stay in lockstep with package tagtext: the reply is parsed against
// exactly these tag names.
package prompt

import "fmt"

// Deck builds the presentation prompt for the completion backend.
func Deck(language, tone, slideCount, topic string) string {
	return fmt.Sprintf(`In your role as a presentation virtuoso, craft a %s language framework for a %s slideshow presentation about %s across %s slides.

Make sure it is %s slides long.

Slide Types:
- Title Slide: (Title, Subtitle)
- Content Slide: (Title, Content)
- Image Slide: (Title, Content, Image)
- Thanks Slide: (Title)

Precede each slide type with the prescribed tags:
- Title Slide: [L_TS]
- Content Slide: [L_CS]
- Image Slide: [L_IS]
- Thanks Slide: [L_THS]

Insert a [SLIDEBREAK] tag after each slide.

Example:
[L_TS]
[TITLE]Mount Everest: The Apex of Achievement[/TITLE]

[SLIDEBREAK]

[L_IS]
[TITLE]Facts about Mount Everest[/TITLE]
[CONTENT]• Towering at 8,848 meters above sea level
• First summited by Hillary and Norgay on May 29, 1953[/CONTENT]
[IMAGE]Mount Everest[/IMAGE]

[SLIDEBREAK]

Use the designated tags for every field:
- Title: [TITLE]...[/TITLE]
- Subtitle: [SUBTITLE]...[/SUBTITLE]
- Content: [CONTENT]...[/CONTENT]
- Image: [IMAGE]...[/IMAGE]

Make each Content segment comprehensive and close it with [/CONTENT].
Write everything in %s. Describe images with vivid keywords such as "Mount Everest Sunset".
Do not reference "Image" inside the Content tag and avoid special characters (?, !, ., :) in the Title.
Strictly adhere to the specified format without any additional text.`,
		language, tone, topic, slideCount, slideCount, language)
}

// Outline builds the research-paper outline prompt.
func Outline(language, tone, topic string) string {
	return fmt.Sprintf(`Create a %s language very long outline for a %s research paper on the topic of %s which is as comprehensive as possible.
Language of research paper - %s.
Provide in-depth and detailed information on each aspect.

Put this tag before the Title: [TITLE] and after: [/TITLE]
Put this tag before the Subtitle: [SUBTITLE] and after: [/SUBTITLE]
Put this tag before the Heading: [HEADING] and after: [/HEADING]
Put this tag before the Content: [CONTENT] and after: [/CONTENT]
Put this tag before the Image: [IMAGE] and after: [/IMAGE]

Elaborate extensively on the Content and conclude each Content section with [/CONTENT].

For instance:
[TITLE]Mental Health[/TITLE]
[SUBTITLE]Understanding and Nurturing Your Mind[/SUBTITLE]
[HEADING]Mental Health Definition[/HEADING]
[CONTENT]...[/CONTENT]
[IMAGE]Person Meditating[/IMAGE]

Accompany each image with descriptive keywords, such as "Niagara Falls Rainbow".
Keep the Title free of special characters (?, !, ., :).
Strictly adhere to the specified format without including any additional information.`,
		language, tone, topic, language)
}
