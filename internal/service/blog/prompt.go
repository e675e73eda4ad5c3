package blog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/bunniesplumbing/chat-gateway/internal/knowledge"
	blogmodel "github.com/bunniesplumbing/chat-gateway/internal/model/blog"
)

func freshTopicMessages(recent []blogmodel.Post) []*schema.Message {
	used := "None yet"
	if len(recent) > 0 {
		var b strings.Builder
		for _, p := range recent {
			fmt.Fprintf(&b, "- %s\n", p.Topic)
		}
		used = strings.TrimSpace(b.String())
	}

	system := fmt.Sprintf("You are a plumbing SEO content strategist for %s in %s. "+
		"Generate practical, searchable blog topics that homeowners actually Google. "+
		"Mix between these types: "+
		"1) Problem-solving content ('how to fix...', 'what causes...', 'signs of...') "+
		"2) Service-focused content that explains what causes people to need specific plumbing services "+
		"like trenchless sewer repair, drain cleaning, water heater replacement, gas line repair, "+
		"crawl space plumbing, emergency plumbing "+
		"3) Company/trust content about why to choose a licensed plumber, what to expect during a "+
		"service call, real customer scenarios. "+
		"Topics should naturally lead readers toward needing professional help.",
		knowledge.CompanyName, knowledge.CompanyLocation)

	user := fmt.Sprintf("Generate ONE unique plumbing blog topic. It must NOT overlap with these "+
		"already-used topics:\n%s\n\nReturn ONLY the topic title, nothing else.", used)

	return []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}
}

const articleSystemPrompt = "You are an expert plumbing content writer and SEO specialist. " +
	"You write authoritative, genuinely helpful blog posts that rank on Google " +
	"and convert readers into customers. You understand local SEO, internal linking " +
	"strategy, and how to write content that answers real homeowner questions. " +
	"You always include internal links to the company's website pages. " +
	"Always respond with valid JSON only, no markdown code fences, just raw JSON."

func articleMessages(topic string, recent []blogmodel.Post) []*schema.Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a high-quality, SEO-optimized blog post for %q, a licensed plumbing "+
		"company in %s serving the entire Bay Area.\n\n", knowledge.CompanyName, knowledge.CompanyLocation)
	fmt.Fprintf(&b, "TOPIC: %s\n\n", topic)

	fmt.Fprintf(&b, "COMPANY INFO:\n- Name: %s\n- Phone: %s\n- Location: %s\n",
		knowledge.CompanyName, knowledge.CompanyPhone, knowledge.CompanyLocation)
	b.WriteString("- Services: Trenchless sewer repair (pipe bursting & CIPP lining), sewer line " +
		"services, water main line services, drain cleaning & hydro jetting, crawl space plumbing, " +
		"gas line services, water heater services, general plumbing, 24/7 emergency plumbing\n")
	b.WriteString("- Has 126+ five-star reviews, 20+ years experience, licensed & insured\n\n")

	b.WriteString(internalLinksContext(recent))
	b.WriteString("\n\n")

	b.WriteString(`Return your response as valid JSON with these exact keys:
{
    "title": "SEO-optimized blog post title (include location or service keyword, 55-65 chars)",
    "meta_description": "Compelling meta description with keyword and CTA (under 155 characters)",
    "keywords": "comma-separated long-tail SEO keywords (6-10 keywords targeting what people search)",
    "excerpt": "2-sentence hook for the blog card that makes the reader NEED to click",
    "category": "One category: Trenchless Technology | Sewer Lines | Drain Cleaning | Water Heaters | Gas Lines | Emergency Tips | Plumbing Tips | Home Maintenance | Repiping | DIY & Prevention | Our Services | Company News",
    "content": "The full blog post body as HTML markup (see requirements below)"
}

CRITICAL REQUIREMENTS for the "content" field:

CONTENT QUALITY:
- Write 1000-1500 words of genuinely helpful, practical content
- Start with a hook paragraph that addresses the reader's pain point directly
- Write like you're talking to a homeowner who just Googled this problem; be helpful, not salesy
- Include practical DIY tips where appropriate, but make it clear when professional help is needed
- Include specific details (temperatures, measurements, timeframes, cost ranges) to build authority
`)
	fmt.Fprintf(&b, "- Mention %s and the Bay Area naturally 2-3 times for local SEO\n\n",
		knowledge.CompanyLocation)

	b.WriteString(`SERVICE-FOCUSED CONTENT:
- If the topic relates to a specific service, EXPLAIN what causes homeowners to need that service
- Describe real-world scenarios and paint the picture of the problem before presenting the solution
- Mention HOW the company performs the service, e.g. for trenchless: "We use pipe bursting technology to replace your old pipe without digging up your yard"
- Compare DIY vs professional when relevant; certain problems REQUIRE a licensed plumber

STRUCTURE:
- Use <h2> for main sections (4-6 sections), <h3> for subsections where needed
- Include at least 2 bulleted/numbered lists with <ul>/<li> or <ol>/<li>
- Use <strong> for key terms and important warnings
- NO <h1> tag (handled by the template), NO <html>/<head>/<body> wrappers

INTERNAL LINKING (MANDATORY):
- Include at least 3-5 internal links using <a href="URL">descriptive anchor text</a>
- Link to the contact page when suggesting readers get professional help
- Link to the estimate page when discussing costs or pricing
- Link to related blog posts when referencing topics covered in other articles
- Links should feel natural; weave them into sentences with descriptive anchor text (never "click here")

CALL-TO-ACTION:
- Include a subtle mid-article CTA linking to the contact page
`)
	fmt.Fprintf(&b, "- End with a strong CTA paragraph mentioning the company name, phone number %s, "+
		"and linking to the contact page\n", knowledge.CompanyPhone)
	b.WriteString(`- The tone should be "we're here to help" not "buy our stuff"

SEO:
- Use the target keyword naturally in the first paragraph
- Include semantic variations and related terms throughout
- Write for humans first, search engines second
- Structure content to potentially earn featured snippets (lists, direct answers to questions)`)

	return []*schema.Message{
		schema.SystemMessage(articleSystemPrompt),
		schema.UserMessage(b.String()),
	}
}

func internalLinksContext(recent []blogmodel.Post) string {
	names := make([]string, 0, len(knowledge.SitePages))
	for name := range knowledge.SitePages {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("INTERNAL SITE PAGES (you MUST link to at least 3 of these within the article):\n")
	for _, name := range names {
		page := knowledge.SitePages[name]
		fmt.Fprintf(&b, "  - %s: URL=%q | Use when: %s | Example anchor: %q\n",
			name, page.URL, page.UseWhen, page.Anchors[0])
	}

	if len(recent) > 0 {
		b.WriteString("\nEXISTING BLOG POSTS (link to 1-3 related posts where relevant):\n")
		for i, p := range recent {
			if i == 10 {
				break
			}
			fmt.Fprintf(&b, "  - %q -> URL=\"../posts/%s.html\"\n", p.Title, p.Slug)
		}
	}
	return strings.TrimSpace(b.String())
}
