package registry

var steps = []StepDef{
	{
		StepNumber:  1,
		Title:       "Business Snapshot",
		Description: "Define your core business model and target market",
		Icon:        "🏢",
		Fields: []Field{
			{Name: "company_name", Label: "Company Name", Type: FieldText, Required: true},
			{Name: "industry", Label: "Industry", Type: FieldSelect, Required: true, Options: []string{
				"Technology", "Healthcare", "Finance", "Retail", "Manufacturing",
				"Professional Services", "Education", "Real Estate", "Other",
			}},
			{Name: "contact_email", Label: "Contact Email", Type: FieldEmail, Required: true},
			{Name: "phone", Label: "Phone Number", Type: FieldTel, Required: false},
			{Name: "website_url", Label: "Current Website (if any)", Type: FieldURL, Required: false},
			{Name: "social_media", Label: "Social Media Links", Type: FieldTextarea, Required: false},
			{Name: "target_market", Label: "Target Market", Type: FieldTextarea, Required: true},
			{Name: "unique_value_proposition", Label: "What makes you unique?", Type: FieldTextarea, Required: true},
		},
	},
	{
		StepNumber:  2,
		Title:       "Goals & Outcomes",
		Description: "Select goals and define your 90-day vision",
		Icon:        "🎯",
		Fields: []Field{
			{Name: "primary_goals", Label: "Primary Business Goals", Type: FieldMultiSelect, Required: true, Options: []string{
				"Generate more leads", "Increase sales calls", "Build brand awareness",
				"Improve customer retention", "Launch new product", "Expand market reach",
				"Automate processes", "Reduce costs", "Improve customer service",
			}},
			{Name: "revenue_goal", Label: "Revenue Goal (next 12 months)", Type: FieldSelect, Required: true, Options: []string{
				"Under $100K", "$100K-500K", "$500K-1M", "$1M-5M", "$5M+",
			}},
			{Name: "vision_90_days", Label: "90-Day Vision", Type: FieldTextarea, Required: true},
			{Name: "success_metrics", Label: "How will you measure success?", Type: FieldTextarea, Required: true},
			{Name: "current_challenges", Label: "Current Business Challenges", Type: FieldTextarea, Required: true},
		},
	},
	{
		StepNumber:  3,
		Title:       "Design & Branding",
		Description: "Upload logo, define colors, fonts, and brand inspiration",
		Icon:        "🎨",
		Fields: []Field{
			{Name: "logo", Label: "Logo Upload", Type: FieldFile, Required: false},
			{Name: "brand_colors", Label: "Brand Colors (if established)", Type: FieldText, Required: false},
			{Name: "preferred_fonts", Label: "Preferred Fonts", Type: FieldText, Required: false},
			{Name: "brand_personality", Label: "Brand Personality", Type: FieldMultiSelect, Required: true, Options: []string{
				"Professional", "Modern", "Creative", "Trustworthy", "Innovative",
				"Friendly", "Luxury", "Minimalist", "Bold", "Playful",
			}},
			{Name: "inspiration_websites", Label: "Design Inspiration URLs", Type: FieldTextarea, Required: false},
			{Name: "brand_story", Label: "Brand Story/Bio", Type: FieldTextarea, Required: true},
			{Name: "avoid_elements", Label: "Design Elements to Avoid", Type: FieldTextarea, Required: false},
		},
	},
	{
		StepNumber:  4,
		Title:       "Website Content",
		Description: "Define site structure, content sections, and inspirational examples",
		Icon:        "📄",
		Fields: []Field{
			{Name: "site_purpose", Label: "Primary Website Purpose", Type: FieldSelect, Required: true, Options: []string{
				"Lead Generation", "E-commerce", "Portfolio/Showcase", "Information/Blog",
				"Service Booking", "Community/Membership", "Landing Page",
			}},
			{Name: "required_pages", Label: "Required Pages", Type: FieldMultiSelect, Required: true, Options: []string{
				"Home", "About", "Services/Products", "Contact", "Blog", "Testimonials",
				"FAQ", "Pricing", "Portfolio", "Team", "Privacy Policy", "Terms",
			}},
			{Name: "main_cta", Label: "Main Call-to-Action", Type: FieldText, Required: true},
			{Name: "secondary_cta", Label: "Secondary Call-to-Action", Type: FieldText, Required: false},
			{Name: "key_messages", Label: "Key Messages to Communicate", Type: FieldTextarea, Required: true},
			{Name: "trust_elements", Label: "Trust Elements (certifications, awards, etc.)", Type: FieldTextarea, Required: false},
			{Name: "website_examples", Label: "Website Examples You Like", Type: FieldTextarea, Required: false},
		},
	},
	{
		StepNumber:  5,
		Title:       "Funnel Design",
		Description: "Design your sales funnel, offers, and lead magnets",
		Icon:        "🔄",
		Fields: []Field{
			{Name: "funnel_type", Label: "Primary Funnel Type", Type: FieldSelect, Required: true, Options: []string{
				"Lead Magnet → Email → Sale", "Webinar → Sale", "Free Trial → Paid",
				"Consultation → Service", "Product Demo → Sale", "Content → Newsletter → Sale",
			}},
			{Name: "lead_magnet", Label: "Lead Magnet/Free Offer", Type: FieldTextarea, Required: true},
			{Name: "main_offer", Label: "Main Offer/Service", Type: FieldTextarea, Required: true},
			{Name: "pricing_structure", Label: "Pricing Structure", Type: FieldTextarea, Required: true},
			{Name: "value_ladder", Label: "Value Ladder (low → high offers)", Type: FieldTextarea, Required: false},
			{Name: "funnel_examples", Label: "Funnel Examples You Admire", Type: FieldTextarea, Required: false},
			{Name: "conversion_goals", Label: "Conversion Goals", Type: FieldTextarea, Required: true},
		},
	},
	{
		StepNumber:  6,
		Title:       "AI Agent Setup",
		Description: "Configure your AI assistant for customer interaction",
		Icon:        "🤖",
		Fields: []Field{
			{Name: "agent_name", Label: "AI Agent Name", Type: FieldText, Required: true},
			{Name: "agent_personality", Label: "Agent Personality", Type: FieldMultiSelect, Required: true, Options: []string{
				"Professional", "Friendly", "Helpful", "Expert", "Casual", "Formal",
				"Enthusiastic", "Calm", "Witty", "Empathetic",
			}},
			{Name: "communication_channels", Label: "Communication Channels", Type: FieldMultiSelect, Required: true, Options: []string{
				"Website Chat", "Voice Calls", "SMS/Text", "Email", "WhatsApp", "Social Media",
			}},
			{Name: "agent_tasks", Label: "Agent Primary Tasks", Type: FieldMultiSelect, Required: true, Options: []string{
				"Answer Questions", "Book Appointments", "Qualify Leads", "Provide Support",
				"Process Orders", "Collect Feedback", "Send Reminders", "Upsell/Cross-sell",
			}},
			{Name: "business_hours", Label: "Business Hours", Type: FieldText, Required: true},
			{Name: "escalation_rules", Label: "When to Transfer to Human", Type: FieldTextarea, Required: true},
			{Name: "agent_knowledge", Label: "Specific Knowledge/Scripts", Type: FieldTextarea, Required: false},
		},
	},
	{
		StepNumber:  7,
		Title:       "Ads & SEO",
		Description: "Plan your advertising and search optimization strategy",
		Icon:        "📢",
		Fields: []Field{
			{Name: "advertising_budget", Label: "Monthly Advertising Budget", Type: FieldSelect, Required: true, Options: []string{
				"Under $500", "$500-1K", "$1K-3K", "$3K-5K", "$5K-10K", "$10K+",
			}},
			{Name: "ad_platforms", Label: "Preferred Ad Platforms", Type: FieldMultiSelect, Required: true, Options: []string{
				"Google Ads", "Facebook/Instagram", "LinkedIn", "YouTube", "TikTok",
				"Twitter", "Pinterest", "Local Directories",
			}},
			{Name: "target_keywords", Label: "Target Keywords", Type: FieldTextarea, Required: true},
			{Name: "target_audience", Label: "Target Audience Demographics", Type: FieldTextarea, Required: true},
			{Name: "ad_message", Label: "Core Advertising Message", Type: FieldTextarea, Required: true},
			{Name: "competitor_ads", Label: "Competitor Ads You've Noticed", Type: FieldTextarea, Required: false},
			{Name: "local_seo", Label: "Local SEO Requirements", Type: FieldTextarea, Required: false},
		},
	},
	{
		StepNumber:  8,
		Title:       "Automation Setup",
		Description: "Design follow-up workflows and automated systems",
		Icon:        "⚙️",
		Fields: []Field{
			{Name: "email_marketing", Label: "Email Marketing Platform Preference", Type: FieldSelect, Required: false, Options: []string{
				"Mailchimp", "ConvertKit", "ActiveCampaign", "HubSpot", "Klaviyo", "Other", "None yet",
			}},
			{Name: "follow_up_sequence", Label: "Follow-up Sequence Strategy", Type: FieldTextarea, Required: true},
			{Name: "automation_triggers", Label: "Automation Triggers", Type: FieldMultiSelect, Required: true, Options: []string{
				"New lead signup", "Purchase completion", "Cart abandonment", "Email open",
				"Website visit", "Demo request", "Support ticket", "Renewal reminder",
			}},
			{Name: "crm_system", Label: "CRM System Preference", Type: FieldSelect, Required: false, Options: []string{
				"HubSpot", "Salesforce", "Pipedrive", "Zoho", "Monday.com", "Other", "None yet",
			}},
			{Name: "review_strategy", Label: "Customer Review Strategy", Type: FieldTextarea, Required: false},
			{Name: "retention_strategy", Label: "Customer Retention Strategy", Type: FieldTextarea, Required: true},
		},
	},
	{
		StepNumber:  9,
		Title:       "Client Portal & Community",
		Description: "Design client portal and community features",
		Icon:        "👥",
		Fields: []Field{
			{Name: "portal_purpose", Label: "Client Portal Purpose", Type: FieldMultiSelect, Required: true, Options: []string{
				"Course/Training Access", "Project Updates", "Resource Library",
				"Community Forum", "Support Center", "File Sharing", "Progress Tracking",
			}},
			{Name: "content_types", Label: "Content Types to Include", Type: FieldMultiSelect, Required: true, Options: []string{
				"Video Lessons", "PDF Resources", "Templates", "Worksheets",
				"Live Sessions", "Q&A Forums", "Progress Quizzes", "Certificates",
			}},
			{Name: "course_outline", Label: "Course/Content Outline", Type: FieldFile, Required: false},
			{Name: "community_guidelines", Label: "Community Guidelines", Type: FieldTextarea, Required: false},
			{Name: "engagement_strategy", Label: "Member Engagement Strategy", Type: FieldTextarea, Required: true},
			{Name: "portal_integrations", Label: "Required Integrations", Type: FieldTextarea, Required: false},
		},
	},
	{
		StepNumber:  10,
		Title:       "Final Review & Assets",
		Description: "Upload final assets and review project checklist",
		Icon:        "✅",
		Fields: []Field{
			{Name: "additional_assets", Label: "Additional Assets Upload", Type: FieldFile, Required: false},
			{Name: "special_requirements", Label: "Special Requirements/Notes", Type: FieldTextarea, Required: false},
			{Name: "timeline_preference", Label: "Preferred Timeline", Type: FieldSelect, Required: true, Options: []string{
				"2-4 weeks", "1-2 months", "2-3 months", "3+ months", "Flexible",
			}},
			{Name: "budget_range", Label: "Project Budget Range", Type: FieldSelect, Required: true, Options: []string{
				"$5K-10K", "$10K-25K", "$25K-50K", "$50K-100K", "$100K+",
			}},
			{Name: "priority_features", Label: "Priority Features (Must Have)", Type: FieldTextarea, Required: true},
			{Name: "nice_to_have", Label: "Nice-to-Have Features", Type: FieldTextarea, Required: false},
			{Name: "final_questions", Label: "Any Final Questions or Concerns?", Type: FieldTextarea, Required: false},
		},
	},
}
