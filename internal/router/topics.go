package router

// Topic is one row of the canned-response table.
type Topic struct {
	Name     string
	Keywords []string // lower-case substrings; any one matches
	Response string
}

// topics is evaluated top to bottom and the first match wins. The broad
// "techiehelp" entry sits last so that questions naming the company and a
// specific topic ("What services does TechieHelp offer?") reach the topic.
var topics = []Topic{
	{
		Name:     "services",
		Keywords: []string{"services"},
		Response: "TechieHelp offers the following services:\n\n" +
			"- **Web Development**: Custom websites designed to meet your needs.\n" +
			"- **App Development**: Mobile apps for iOS and Android.\n" +
			"- **SEO Services**: Optimize your site for better search engine rankings.\n" +
			"- **UI/UX Design**: Enhance user experience with our design services.\n" +
			"- **Admissions Support**: Assistance with educational program admissions.\n\n" +
			"For more details, visit our [Services Page](https://techiehelp.com/services).",
	},
	{
		Name:     "internships",
		Keywords: []string{"internships"},
		Response: "TechieHelp provides internships across various domains. Our internships include:\n\n" +
			"- **AI and Machine Learning**: Work on cutting-edge AI projects and gain practical experience.\n" +
			"- **Web Development**: Hands-on experience with real-world web development tasks.\n" +
			"- **App Development**: Develop mobile applications and gain industry insights.\n" +
			"- **SEO and Digital Marketing**: Learn SEO and digital marketing strategies.\n\n" +
			"Explore our [Internships Page](https://techiehelp.com/internships) for more details.",
	},
	{
		Name:     "mission",
		Keywords: []string{"mission"},
		Response: "TechieHelp's mission is to bridge the gap between education and industry by providing " +
			"meaningful internship and development opportunities. We aim to empower students and " +
			"professionals to achieve their career goals through practical experience and expert guidance.",
	},
	{
		Name:     "founder",
		Keywords: []string{"founder"},
		Response: "TechieHelp was founded by Amit Kumar, a front-end developer and AI enthusiast. Amit Kumar " +
			"is dedicated to creating a platform that facilitates skill development and career advancement. " +
			"Connect with Amit Kumar on [LinkedIn](https://linkedin.com/in/amit-kumar).",
	},
	{
		Name:     "contact",
		Keywords: []string{"contact"},
		Response: "You can contact TechieHelp via email at info@techiehelp.com or visit our " +
			"[website](https://techiehelp.com) for more information.",
	},
	{
		Name:     "about",
		Keywords: []string{"about techiehelp", "techiehelp"},
		Response: "TechieHelp is a dynamic platform designed to empower students and professionals by providing " +
			"a range of services and opportunities. Here's what we offer:\n\n" +
			"- **Web Development**: We create custom websites that are responsive, user-friendly, and tailored " +
			"to your business needs. Learn more about our [Web Development Services](https://techiehelp.com/web-development).\n" +
			"- **App Development**: Our team develops high-quality mobile applications for both iOS and Android " +
			"platforms. Explore our [App Development Services](https://techiehelp.com/app-development).\n" +
			"- **SEO Services**: Improve your website's visibility and ranking on search engines with our expert " +
			"SEO services. Discover more about our [SEO Services](https://techiehelp.com/seo).\n" +
			"- **UI/UX Design**: We offer design services to enhance user experience and create visually appealing " +
			"interfaces. Check out our [UI/UX Design Services](https://techiehelp.com/ui-ux-design).\n" +
			"- **Admissions Support**: Get assistance with admissions for various educational programs and courses. " +
			"Find out more about our [Admissions Support](https://techiehelp.com/admissions).\n\n" +
			"TechieHelp was founded by Amit Kumar, a passionate front-end developer and AI enthusiast. Amit Kumar " +
			"is committed to bridging the gap between academic learning and real-world experience. Connect with " +
			"Amit on [LinkedIn](https://linkedin.com/in/amit-kumar).\n\n" +
			"For more information, visit our [website](https://techiehelp.com).\n\n" +
			"Connect with us on social media:\n" +
			"- [Twitter](https://twitter.com/techiehelp)\n" +
			"- [LinkedIn](https://linkedin.com/company/techiehelp)\n" +
			"- [Facebook](https://facebook.com/techiehelp)",
	},
}
