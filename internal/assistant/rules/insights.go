package rules

import (
	"fmt"
	"strings"
)

const defaultInsights = "Based on the information you've provided, I can see you're making great progress. Complete all the fields to get more detailed insights and recommendations tailored to your specific situation."

func stepInsights(step int, data map[string]any) string {
	switch step {
	case 1:
		return businessInsights(data)
	case 2:
		return goalInsights(data)
	case 3:
		return brandInsights(data)
	case 4:
		return websiteInsights(data)
	case 5:
		return funnelInsights(data)
	}
	return defaultInsights
}

func businessInsights(data map[string]any) string {
	if !filled(data, "company_name") || !filled(data, "industry") || !filled(data, "target_market") {
		return "Please complete all the form fields first so I can provide personalized insights for your business."
	}

	industry := str(data, "industry", "")
	market := "competitive"
	if industry == "Technology" || industry == "Healthcare" || industry == "Finance" {
		market = "high-growth"
	}

	social := "social media"
	if filled(data, "social_media") {
		social = "your social media presence"
	}

	return fmt.Sprintf(`Based on your business information, here are my strategic insights:

**Market Position**: As a %s company targeting %s, you're in a %s market. Your unique value proposition %q gives you a strong differentiator.

**Recommendations**:
1. Focus on building trust through case studies and testimonials
2. Develop content that addresses specific pain points of %s
3. Consider a freemium or trial model to reduce barrier to entry
4. Leverage %s for thought leadership

**Next Steps**: In the following steps, we'll build on this foundation to create a comprehensive go-to-market strategy.`,
		industry,
		str(data, "target_market", ""),
		market,
		str(data, "unique_value_proposition", ""),
		str(data, "target_market", ""),
		social)
}

func goalInsights(data map[string]any) string {
	goals := values(data, "primary_goals")
	top := goals
	if len(top) > 3 {
		top = top[:3]
	}

	critical := "Focus on consistent execution and measurement"
	if filled(data, "current_challenges") {
		critical = fmt.Sprintf("Addressing your challenges around %q", str(data, "current_challenges", ""))
	}

	return fmt.Sprintf(`Based on your goals and 90-day vision, here's my strategic analysis:

**Goal Alignment**: Your primary goals to %s are well-aligned with your revenue target of %s.

**90-Day Action Plan**:
Week 1-2: Foundation building and quick wins
Week 3-4: Launch initial campaigns and test messaging
Week 5-8: Scale what works, iterate on what doesn't
Week 9-12: Optimize and prepare for next quarter

**Success Metrics Framework**:
- Leading indicators: Website traffic, lead generation, engagement rates
- Lagging indicators: Conversion rates, revenue, customer satisfaction

**Critical Success Factors**: %s`,
		strings.Join(top, ", "),
		str(data, "revenue_goal", "Not specified"),
		critical)
}

func brandInsights(data map[string]any) string {
	personality := values(data, "brand_personality")

	presence := "distinctive and appealing"
	if contains(personality, "Professional") {
		presence = "trustworthy and authoritative"
	} else if contains(personality, "Creative") {
		presence = "innovative and memorable"
	}

	style := "Rich, engaging layouts with visual interest"
	if contains(personality, "Minimalist") {
		style = "Clean, spacious layouts with plenty of whitespace"
	}

	voice := "Develop a brand story that connects emotionally with your audience"
	if filled(data, "brand_story") {
		voice = "Your brand story provides an authentic foundation"
	}

	return fmt.Sprintf(`Here's my brand strategy analysis based on your inputs:

**Brand Personality Profile**: Your brand traits of %s create a %s presence.

**Visual Identity Recommendations**:
- Primary Colors: %s
- Typography: %s
- Design Style: %s

**Brand Voice**: %s

**Implementation Priority**: Start with consistent visual identity across all touchpoints.`,
		strings.Join(personality, ", "),
		presence,
		str(data, "brand_colors", "Deep blue (#007BFF) for trust, gold accents (#FFD700) for premium feel"),
		str(data, "preferred_fonts", "Modern sans-serif for headers, readable serif for body text"),
		style,
		voice)
}

func websiteInsights(data map[string]any) string {
	purpose := str(data, "site_purpose", "Lead Generation")
	pages := values(data, "required_pages")

	var arch []string
	if contains(pages, "Home") {
		arch = append(arch, "- Homepage: Hero section with clear value prop, social proof, and primary CTA")
	}
	if contains(pages, "Services/Products") {
		arch = append(arch, "- Services: Detailed offerings with benefits-focused copy")
	}
	if contains(pages, "About") {
		arch = append(arch, "- About: Story-driven narrative that builds trust")
	}
	if contains(pages, "Contact") {
		arch = append(arch, "- Contact: Multiple contact methods with response time expectations")
	}

	return fmt.Sprintf(`Based on your website requirements, here's my content strategy:

**Site Architecture** for %s:
%s

**Conversion Optimization**:
- Primary CTA: %q should appear above the fold and throughout the journey
- Secondary CTA: %q for users not ready to convert
- Trust Elements: %s

**Content Priorities**:
1. Clear, benefit-focused headlines
2. Scannable content with bullet points
3. Visual hierarchy guiding to CTAs
4. Mobile-first responsive design

**SEO Foundation**: Structure content around your target keywords from Step 7.`,
		purpose,
		strings.Join(arch, "\n"),
		str(data, "main_cta", ""),
		str(data, "secondary_cta", "Learn More"),
		str(data, "trust_elements", "Include testimonials, certifications, and guarantees"))
}

func funnelInsights(data map[string]any) string {
	projection := "100+ qualified leads per month"
	switch str(data, "revenue_goal", "") {
	case "$100K-500K":
		projection = "10-50 qualified leads per month"
	case "$500K-1M":
		projection = "50-100 qualified leads per month"
	}

	return fmt.Sprintf(`Here's your customized funnel strategy:

**Funnel Architecture** (%s):

Top of Funnel (Awareness):
- Lead Magnet: %q
- Traffic Sources: Paid ads, SEO, social media
- Expected Conversion: 20-30%% opt-in rate

Middle of Funnel (Consideration):
- Email Nurture Sequence: 5-7 emails over 2 weeks
- Value Building: Case studies, testimonials, demos
- Expected Conversion: 10-15%% to sales conversation

Bottom of Funnel (Decision):
- Main Offer: %q
- Pricing: %s
- Expected Conversion: 20-30%% close rate

**Optimization Strategies**:
1. A/B test headlines and CTAs
2. Implement exit-intent popups
3. Add urgency and scarcity elements
4. Create a downsell/upsell sequence

**Revenue Projection**: With proper execution, this funnel could generate %s.`,
		str(data, "funnel_type", "Lead Magnet → Email → Sale"),
		str(data, "lead_magnet", "Free valuable resource"),
		str(data, "main_offer", "Your core service"),
		str(data, "pricing_structure", "Clear, value-based pricing"),
		projection)
}
