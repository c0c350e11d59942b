// Package prd assembles the Project Requirements Document from completed
// wizard steps. Assemble is pure: identical input produces byte-identical
// output, and missing fields degrade to literal placeholders rather than
// dropped lines.
package prd

import (
	"fmt"
	"strings"
	"time"

	"github.com/devnow-platform/onboarding-backend/internal/wizard/domain"
)

// Version is stamped into GeneratedOutput metadata.
const Version = "1.0"

// Assemble renders the PRD for the given step data, keyed by step number.
// Steps may be missing entirely; each field falls back on its own.
func Assemble(steps map[int]domain.FormData, generatedAt time.Time) string {
	get := func(n int) domain.FormData {
		if d, ok := steps[n]; ok && d != nil {
			return d
		}
		return domain.FormData{}
	}
	s1, s2, s3 := get(1), get(2), get(3)
	s4, s5, s6 := get(4), get(5), get(6)
	s7, s8, s9 := get(7), get(8), get(9)
	s10 := get(10)

	var b strings.Builder

	fmt.Fprintf(&b, `# Project Requirements Document (PRD)

Generated on: %s

## Executive Summary

This PRD outlines the comprehensive requirements for developing a complete digital presence and business system for **%s**.

### Project Overview
- **Industry**: %s
- **Target Market**: %s
- **Unique Value Proposition**: %s
- **Timeline**: %s
- **Budget Range**: %s

---

`,
		generatedAt.Format("January 2, 2006"),
		text(s1, "company_name", "Company"),
		text(s1, "industry", "Not specified"),
		text(s1, "target_market", "Not specified"),
		text(s1, "unique_value_proposition", "Not specified"),
		text(s10, "timeline_preference", "To be determined"),
		text(s10, "budget_range", "To be determined"))

	fmt.Fprintf(&b, `## 1. Business Foundation

### Company Information
- **Company Name**: %s
- **Industry**: %s
- **Contact Email**: %s
- **Phone**: %s
- **Current Website**: %s

### Market Position
- **Target Market**: %s
- **Unique Value Proposition**: %s

### Social Media Presence
%s

---

`,
		text(s1, "company_name", "Not specified"),
		text(s1, "industry", "Not specified"),
		text(s1, "contact_email", "Not specified"),
		text(s1, "phone", "Not specified"),
		text(s1, "website_url", "None"),
		text(s1, "target_market", "Not specified"),
		text(s1, "unique_value_proposition", "Not specified"),
		text(s1, "social_media", "No social media links provided"))

	fmt.Fprintf(&b, `## 2. Goals & Objectives

### Primary Business Goals
%s

### Revenue Target
- **12-Month Goal**: %s

### 90-Day Vision
%s

### Success Metrics
%s

### Current Challenges
%s

---

`,
		bullets(s2, "primary_goals"),
		text(s2, "revenue_goal", "Not specified"),
		text(s2, "vision_90_days", "Not specified"),
		text(s2, "success_metrics", "Not specified"),
		text(s2, "current_challenges", "Not specified"))

	fmt.Fprintf(&b, `## 3. Brand Identity & Design

### Visual Identity
- **Logo**: %s
- **Brand Colors**: %s
- **Fonts**: %s

### Brand Personality
%s

### Brand Story
%s

### Design References
- **Inspiration Sites**: %s
- **Elements to Avoid**: %s

---

`,
		provided(s3, "logo", "Provided", "To be created"),
		text(s3, "brand_colors", "To be determined"),
		text(s3, "preferred_fonts", "To be determined"),
		bullets(s3, "brand_personality"),
		text(s3, "brand_story", "Not specified"),
		text(s3, "inspiration_websites", "None provided"),
		text(s3, "avoid_elements", "None specified"))

	fmt.Fprintf(&b, `## 4. Website Requirements

### Site Purpose
- **Primary Purpose**: %s
- **Required Pages**: %s

### Call-to-Actions
- **Primary CTA**: %s
- **Secondary CTA**: %s

### Content Strategy
- **Key Messages**: %s
- **Trust Elements**: %s
- **Example Sites**: %s

---

`,
		text(s4, "site_purpose", "Not specified"),
		joined(s4, "required_pages"),
		text(s4, "main_cta", "Not specified"),
		text(s4, "secondary_cta", "Not specified"),
		text(s4, "key_messages", "Not specified"),
		text(s4, "trust_elements", "Not specified"),
		text(s4, "website_examples", "None provided"))

	fmt.Fprintf(&b, `## 5. Sales Funnel Design

### Funnel Architecture
- **Funnel Type**: %s
- **Lead Magnet**: %s
- **Main Offer**: %s

### Pricing & Value Ladder
- **Pricing Structure**: %s
- **Value Ladder**: %s

### Conversion Goals
%s

### Reference Funnels
%s

---

`,
		text(s5, "funnel_type", "Not specified"),
		text(s5, "lead_magnet", "Not specified"),
		text(s5, "main_offer", "Not specified"),
		text(s5, "pricing_structure", "Not specified"),
		text(s5, "value_ladder", "Not specified"),
		text(s5, "conversion_goals", "Not specified"),
		text(s5, "funnel_examples", "None provided"))

	fmt.Fprintf(&b, `## 6. AI Agent Configuration

### Agent Details
- **Agent Name**: %s
- **Personality**: %s
- **Communication Channels**: %s

### Functionality
- **Primary Tasks**: %s
- **Business Hours**: %s
- **Escalation Rules**: %s
- **Knowledge Base**: %s

---

`,
		text(s6, "agent_name", "Not specified"),
		joined(s6, "agent_personality"),
		joined(s6, "communication_channels"),
		joined(s6, "agent_tasks"),
		text(s6, "business_hours", "Not specified"),
		text(s6, "escalation_rules", "Not specified"),
		text(s6, "agent_knowledge", "To be developed"))

	fmt.Fprintf(&b, `## 7. Marketing & SEO Strategy

### Advertising
- **Monthly Budget**: %s
- **Platforms**: %s

### SEO Strategy
- **Target Keywords**: %s
- **Target Audience**: %s
- **Core Message**: %s

### Competitive Analysis
- **Competitor Ads**: %s
- **Local SEO**: %s

---

`,
		text(s7, "advertising_budget", "Not specified"),
		joined(s7, "ad_platforms"),
		text(s7, "target_keywords", "Not specified"),
		text(s7, "target_audience", "Not specified"),
		text(s7, "ad_message", "Not specified"),
		text(s7, "competitor_ads", "None noted"),
		text(s7, "local_seo", "Not applicable"))

	fmt.Fprintf(&b, `## 8. Automation & Workflows

### Email Marketing
- **Platform**: %s
- **Follow-up Strategy**: %s

### Automation Triggers
%s

### Systems Integration
- **CRM**: %s
- **Review Strategy**: %s
- **Retention Strategy**: %s

---

`,
		text(s8, "email_marketing", "To be determined"),
		text(s8, "follow_up_sequence", "Not specified"),
		bullets(s8, "automation_triggers"),
		text(s8, "crm_system", "To be determined"),
		text(s8, "review_strategy", "Not specified"),
		text(s8, "retention_strategy", "Not specified"))

	fmt.Fprintf(&b, `## 9. Client Portal & Community

### Portal Purpose
%s

### Content Strategy
- **Content Types**: %s
- **Course Outline**: %s

### Community Management
- **Guidelines**: %s
- **Engagement Strategy**: %s
- **Integrations**: %s

---

`,
		bullets(s9, "portal_purpose"),
		joined(s9, "content_types"),
		provided(s9, "course_outline", "Provided", "To be developed"),
		text(s9, "community_guidelines", "To be developed"),
		text(s9, "engagement_strategy", "Not specified"),
		text(s9, "portal_integrations", "None specified"))

	fmt.Fprintf(&b, `## 10. Project Delivery

### Final Requirements
- **Additional Assets**: %s
- **Special Requirements**: %s

### Priorities
- **Must-Have Features**: %s
- **Nice-to-Have Features**: %s

### Questions & Concerns
%s

---

`,
		provided(s10, "additional_assets", "Provided", "None"),
		text(s10, "special_requirements", "None"),
		text(s10, "priority_features", "Not specified"),
		text(s10, "nice_to_have", "Not specified"),
		text(s10, "final_questions", "None"))

	b.WriteString(closingSections)

	return b.String()
}

const closingSections = `## Technical Implementation Notes

### Development Approach
Based on the requirements above, we recommend a modern, scalable architecture:

1. **Frontend**: Component-based web frontend optimized for performance and SEO
2. **Backend**: Managed Postgres with authentication and real-time features
3. **AI Integration**: LLM-backed agent functionality
4. **Hosting**: Global CDN with edge functions
5. **Analytics**: Conversion tracking end to end

### Key Integrations
- Payment processing (Stripe/PayPal)
- Email marketing platform integration
- CRM system API connection
- Social media APIs
- Calendar scheduling system
- Analytics and tracking pixels

### Security & Compliance
- SSL certificate and HTTPS enforcement
- GDPR compliance for data collection
- Regular security audits
- Automated backups
- DDoS protection

### Performance Targets
- Page load time < 3 seconds
- Mobile-first responsive design
- Core Web Vitals optimization
- 95+ PageSpeed score

---

## Next Steps

1. **Review & Approval**: Client to review this PRD and provide feedback
2. **Design Phase**: Create mockups and prototypes based on brand guidelines
3. **Development Sprint Planning**: Break down features into 2-week sprints
4. **Testing & Launch**: Comprehensive testing before go-live
5. **Training & Handoff**: Team training on all systems and tools

---

*This PRD serves as the master document for the project. Any changes should be documented and approved by all stakeholders.*`

// text returns the string value for key, or fallback when absent or blank.
func text(d domain.FormData, key, fallback string) string {
	if v, ok := d[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// bullets renders a multiselect as markdown bullets, "- Not specified" when empty.
func bullets(d domain.FormData, key string) string {
	vs := list(d, key)
	if len(vs) == 0 {
		return "- Not specified"
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = "- " + v
	}
	return strings.Join(out, "\n")
}

// joined renders a multiselect comma-separated, "Not specified" when empty.
func joined(d domain.FormData, key string) string {
	vs := list(d, key)
	if len(vs) == 0 {
		return "Not specified"
	}
	return strings.Join(vs, ", ")
}

// provided maps file-type fields to a yes/no literal.
func provided(d domain.FormData, key, yes, no string) string {
	switch v := d[key].(type) {
	case nil:
		return no
	case string:
		if strings.TrimSpace(v) == "" {
			return no
		}
	}
	return yes
}

func list(d domain.FormData, key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
