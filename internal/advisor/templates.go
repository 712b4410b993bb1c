package advisor

import "advisor-backend/internal/sessions"

// categoryKey maps an arbitrary category string onto one of the known
// template bundles. Unknown categories get the tech bundle.
func categoryKey(category string) string {
	switch category {
	case "tech", "saas", "ecommerce", "personal", "service", "offline":
		return category
	default:
		return "tech"
	}
}

type categoryBundle struct {
	recommendations func(budgetNum int, idea string) []sessions.Recommendation
	competitors     []sessions.Competitor
}

var categoryBundles = map[string]categoryBundle{
	"tech": {
		recommendations: func(budgetNum int, idea string) []sessions.Recommendation {
			firstRisk := "Medium"
			if budgetNum > 500000 {
				firstRisk = "Low"
			}
			return []sessions.Recommendation{
				{
					Title:           "Tech-Driven MVP",
					Description:     `Build a minimal viable product for: "` + prefix(idea, 80) + `..." Start with core features and iterate based on user feedback.`,
					ConfidenceScore: 85,
					RiskLevel:       firstRisk,
				},
				{
					Title:           "API-First Architecture",
					Description:     "Design with scalability in mind using modern tech stack and cloud infrastructure",
					ConfidenceScore: 80,
					RiskLevel:       "Medium",
				},
				{
					Title:           "User-Centric Design",
					Description:     "Focus on exceptional UX/UI to differentiate from competitors",
					ConfidenceScore: 78,
					RiskLevel:       "Low",
				},
			}
		},
		competitors: []sessions.Competitor{
			{Name: "Established Tech Giants", Level: "High", Description: "Large companies with significant resources"},
			{Name: "Innovative Startups", Level: "Medium", Description: "Agile competitors with fresh approaches"},
			{Name: "Niche Solutions", Level: "Low", Description: "Specialized tools for specific use cases"},
		},
	},
	"saas": {
		recommendations: func(budgetNum int, idea string) []sessions.Recommendation {
			return []sessions.Recommendation{
				{
					Title:           "B2B SaaS Solution",
					Description:     `Enterprise-focused tool based on: "` + prefix(idea, 80) + `..." Target SMBs first, then scale to enterprise.`,
					ConfidenceScore: 88,
					RiskLevel:       "Low",
				},
				{
					Title:           "Freemium Model",
					Description:     "Offer free tier to drive adoption, premium features for revenue",
					ConfidenceScore: 85,
					RiskLevel:       "Low",
				},
				{
					Title:           "Integration Strategy",
					Description:     "Build integrations with popular tools to increase stickiness",
					ConfidenceScore: 82,
					RiskLevel:       "Medium",
				},
			}
		},
		competitors: []sessions.Competitor{
			{Name: "Market Leaders", Level: "High", Description: "Established SaaS platforms with large user bases"},
			{Name: "Mid-tier Players", Level: "Medium", Description: "Growing companies with strong features"},
			{Name: "New Entrants", Level: "Low", Description: "Recent launches with innovative approaches"},
		},
	},
	"ecommerce": {
		recommendations: func(budgetNum int, idea string) []sessions.Recommendation {
			return []sessions.Recommendation{
				{
					Title:           "Niche E-commerce Store",
					Description:     `Focus on specific market segment: "` + prefix(idea, 80) + `..." Build loyal customer base before expanding.`,
					ConfidenceScore: 80,
					RiskLevel:       "Medium",
				},
				{
					Title:           "D2C Brand Strategy",
					Description:     "Direct-to-consumer model with strong brand identity and storytelling",
					ConfidenceScore: 85,
					RiskLevel:       "Medium",
				},
				{
					Title:           "Omnichannel Approach",
					Description:     "Combine online and offline presence for maximum reach",
					ConfidenceScore: 75,
					RiskLevel:       "High",
				},
			}
		},
		competitors: []sessions.Competitor{
			{Name: "Amazon/Flipkart", Level: "High", Description: "Dominant marketplaces with vast selection"},
			{Name: "Category Leaders", Level: "Medium", Description: "Specialized stores in your niche"},
			{Name: "Local Sellers", Level: "Low", Description: "Small businesses and individual sellers"},
		},
	},
	"personal": {
		recommendations: func(budgetNum int, idea string) []sessions.Recommendation {
			return []sessions.Recommendation{
				{
					Title:           "Personal Brand Platform",
					Description:     `Build authority around: "` + prefix(idea, 80) + `..." Leverage content marketing and social media.`,
					ConfidenceScore: 82,
					RiskLevel:       "Low",
				},
				{
					Title:           "Digital Products",
					Description:     "Create courses, ebooks, or templates for passive income",
					ConfidenceScore: 88,
					RiskLevel:       "Low",
				},
				{
					Title:           "Community Building",
					Description:     "Build engaged community through membership or subscription model",
					ConfidenceScore: 80,
					RiskLevel:       "Medium",
				},
			}
		},
		competitors: []sessions.Competitor{
			{Name: "Established Influencers", Level: "High", Description: "Well-known personalities in your niche"},
			{Name: "Growing Creators", Level: "Medium", Description: "Mid-tier content creators"},
			{Name: "New Voices", Level: "Low", Description: "Emerging creators in the space"},
		},
	},
	"service": {
		recommendations: func(budgetNum int, idea string) []sessions.Recommendation {
			return []sessions.Recommendation{
				{
					Title:           "Service Business Model",
					Description:     `Professional services for: "` + prefix(idea, 80) + `..." Start with high-touch, scale with productization.`,
					ConfidenceScore: 85,
					RiskLevel:       "Low",
				},
				{
					Title:           "Retainer Packages",
					Description:     "Offer monthly retainer packages for predictable revenue",
					ConfidenceScore: 90,
					RiskLevel:       "Low",
				},
				{
					Title:           "Specialization Strategy",
					Description:     "Focus on specific industry or service type to become expert",
					ConfidenceScore: 88,
					RiskLevel:       "Low",
				},
			}
		},
		competitors: []sessions.Competitor{
			{Name: "Established Agencies", Level: "High", Description: "Large service providers with proven track records"},
			{Name: "Boutique Firms", Level: "Medium", Description: "Specialized agencies with niche focus"},
			{Name: "Freelancers", Level: "Low", Description: "Individual service providers"},
		},
	},
	"offline": {
		recommendations: func(budgetNum int, idea string) []sessions.Recommendation {
			return []sessions.Recommendation{
				{
					Title:           "Physical Location Strategy",
					Description:     `Brick-and-mortar business: "` + prefix(idea, 80) + `..." Choose location carefully, focus on experience.`,
					ConfidenceScore: 75,
					RiskLevel:       "High",
				},
				{
					Title:           "Hybrid Model",
					Description:     "Combine physical presence with online ordering/booking",
					ConfidenceScore: 82,
					RiskLevel:       "Medium",
				},
				{
					Title:           "Community Focus",
					Description:     "Build strong local community ties and word-of-mouth marketing",
					ConfidenceScore: 85,
					RiskLevel:       "Medium",
				},
			}
		},
		competitors: []sessions.Competitor{
			{Name: "Chain Stores", Level: "High", Description: "Large chains with brand recognition"},
			{Name: "Local Businesses", Level: "Medium", Description: "Established local competitors"},
			{Name: "New Entrants", Level: "Low", Description: "Recent openings in the area"},
		},
	},
}

// coFounderProfile is deterministic per category; experience only toggles
// between two alternatives for the tech and saas bundles.
func coFounderProfile(category, experience string) *sessions.CoFounderProfile {
	beginner := experience == "Beginner"
	switch categoryKey(category) {
	case "tech":
		if beginner {
			return &sessions.CoFounderProfile{
				Role:        "Technical Co-Founder (Senior)",
				Personality: "Patient Mentor, Detail-Oriented",
				Skills:      []string{"Full-Stack Development", "System Architecture", "DevOps", "Technical Leadership"},
				Strength:    "Brings technical expertise you need",
				Weakness:    "May move too fast initially",
			}
		}
		return &sessions.CoFounderProfile{
			Role:        "Business Development Co-Founder",
			Personality: "Strategic Thinker, Execution-Focused",
			Skills:      []string{"Business Strategy", "Sales & Marketing", "Fundraising", "Partnership Development"},
			Strength:    "Complements your technical vision with business acumen",
			Weakness:    "Needs alignment on technical decisions",
		}
	case "saas":
		profile := &sessions.CoFounderProfile{
			Personality: "Data-Driven, Customer-Focused",
			Strength:    "Understands SaaS metrics and scaling",
			Weakness:    "Requires clear product vision alignment",
		}
		if beginner {
			profile.Role = "Technical Co-Founder"
			profile.Skills = []string{"Product Development", "SaaS Architecture", "API Design", "Cloud Infrastructure"}
		} else {
			profile.Role = "Growth & Marketing Co-Founder"
			profile.Skills = []string{"Growth Hacking", "Content Marketing", "SEO/SEM", "Customer Success"}
		}
		return profile
	case "ecommerce":
		return &sessions.CoFounderProfile{
			Role:        "Operations & Supply Chain Co-Founder",
			Personality: "Process-Oriented, Analytical",
			Skills:      []string{"Supply Chain Management", "Inventory Optimization", "Logistics", "Vendor Relations"},
			Strength:    "Operational excellence and efficiency",
			Weakness:    "May focus too much on operations vs growth",
		}
	case "personal":
		return &sessions.CoFounderProfile{
			Role:        "Marketing & Community Co-Founder",
			Personality: "Creative, Engaging",
			Skills:      []string{"Content Strategy", "Social Media Marketing", "Community Building", "Brand Development"},
			Strength:    "Audience growth and engagement",
			Weakness:    "Needs structure for monetization",
		}
	case "service":
		return &sessions.CoFounderProfile{
			Role:        "Sales & Client Relations Co-Founder",
			Personality: "Relationship-Builder, Persuasive",
			Skills:      []string{"Client Management", "Sales Strategy", "Negotiation", "Account Management"},
			Strength:    "Revenue generation and client retention",
			Weakness:    "May overpromise to clients",
		}
	default: // offline
		return &sessions.CoFounderProfile{
			Role:        "Operations & Management Co-Founder",
			Personality: "Hands-On, Detail-Oriented",
			Skills:      []string{"Operations Management", "Staff Training", "Local Marketing", "Financial Planning"},
			Strength:    "Day-to-day execution excellence",
			Weakness:    "May resist digital transformation",
		}
	}
}

// roadmapTemplate returns the fixed 4-phase roadmap for a category. Phase 1
// is "current", the rest "upcoming". Budget and experience tiers swap in
// alternate task wording. Categories without their own template use tech's.
func roadmapTemplate(category string, lowBudget, beginner bool) []sessions.RoadmapPhase {
	pick := func(whenTrue, whenFalse string, cond bool) string {
		if cond {
			return whenTrue
		}
		return whenFalse
	}

	switch categoryKey(category) {
	case "saas":
		return []sessions.RoadmapPhase{
			{
				Phase: "Phase 1", Title: "Market Research & Planning", Duration: "Weeks 1-4", Status: "current",
				Tasks: []string{
					"Identify target market and ideal customer profile",
					"Analyze top 5 competitors and their pricing",
					"Define unique value proposition and positioning",
					"Create product specification document",
					"Design pricing tiers and business model",
					"Build landing page for email collection",
				},
			},
			{
				Phase: "Phase 2", Title: "MVP Development", Duration: "Weeks 5-10", Status: "upcoming",
				Tasks: []string{
					"Build core SaaS features and dashboard",
					"Implement user authentication and billing",
					"Set up subscription management system",
					"Create onboarding flow for new users",
					"Integrate payment gateway (Stripe/Razorpay)",
					"Set up email automation for user engagement",
					"Implement basic analytics and reporting",
				},
			},
			{
				Phase: "Phase 3", Title: "Beta Testing & Refinement", Duration: "Weeks 11-16", Status: "upcoming",
				Tasks: []string{
					"Launch beta with 20-50 paying customers",
					"Offer discounted annual plans for early adopters",
					"Collect feedback and measure key SaaS metrics",
					"Improve product based on user feedback",
					"Create help documentation and video tutorials",
					"Set up customer success processes",
					"Build integrations with popular tools",
				},
			},
			{
				Phase: "Phase 4", Title: "Launch & Growth", Duration: "Weeks 17-24", Status: "upcoming",
				Tasks: []string{
					"Public launch with content marketing strategy",
					"Start SEO and content creation efforts",
					"Run targeted ads to acquire customers",
					"Implement referral and affiliate programs",
					"Focus on reducing churn and increasing LTV",
					"Expand feature set based on customer requests",
					"Explore enterprise sales opportunities",
					"Build case studies and testimonials",
				},
			},
		}
	case "ecommerce":
		return []sessions.RoadmapPhase{
			{
				Phase: "Phase 1", Title: "Product & Supplier Setup", Duration: "Weeks 1-4", Status: "current",
				Tasks: []string{
					"Research and select product niche",
					"Find reliable suppliers and negotiate terms",
					"Order product samples and test quality",
					"Set up legal entity and business licenses",
					"Create brand identity and packaging design",
					"Build e-commerce website or set up marketplace store",
				},
			},
			{
				Phase: "Phase 2", Title: "Store Launch & Initial Sales", Duration: "Weeks 5-10", Status: "upcoming",
				Tasks: []string{
					"Launch online store with initial product catalog",
					"Set up payment and shipping integrations",
					"Create product photography and descriptions",
					"Implement inventory management system",
					"Set up customer service channels",
					"Launch with friends and family for feedback",
					"Start social media marketing",
				},
			},
			{
				Phase: "Phase 3", Title: "Marketing & Customer Acquisition", Duration: "Weeks 11-16", Status: "upcoming",
				Tasks: []string{
					"Run Facebook and Instagram ad campaigns",
					"Partner with micro-influencers for promotion",
					"Implement email marketing automation",
					"Offer first-purchase discounts and promotions",
					"Collect and showcase customer reviews",
					"Optimize product pages for conversions",
					"Expand product line based on demand",
				},
			},
			{
				Phase: "Phase 4", Title: "Scaling & Optimization", Duration: "Weeks 17-24", Status: "upcoming",
				Tasks: []string{
					"Optimize supply chain and reduce costs",
					"Implement upselling and cross-selling strategies",
					"Expand to additional sales channels",
					"Build customer loyalty program",
					"Improve shipping times and customer experience",
					"Scale advertising spend on profitable channels",
					"Consider wholesale or B2B opportunities",
					"Plan seasonal campaigns and promotions",
				},
			},
		}
	default: // tech and everything else
		return []sessions.RoadmapPhase{
			{
				Phase: "Phase 1", Title: "Validation & Planning", Duration: "Weeks 1-4", Status: "current",
				Tasks: []string{
					pick("Learn basic programming and tech stack fundamentals", "Define technical architecture and tech stack", beginner),
					"Conduct 30+ customer interviews to validate problem",
					"Create detailed user personas and journey maps",
					"Build wireframes and mockups for core features",
					"Set up development environment and version control",
					pick("Research free/low-cost tools and services", "Evaluate and select development tools", lowBudget),
				},
			},
			{
				Phase: "Phase 2", Title: "MVP Development", Duration: "Weeks 5-12", Status: "upcoming",
				Tasks: []string{
					"Build core features focusing on main value proposition",
					"Set up basic authentication and user management",
					"Implement database schema and API endpoints",
					"Create landing page with email capture",
					"Set up analytics and error tracking",
					"Conduct internal testing and bug fixes",
					pick("Join developer communities for support", "Code review and optimization", beginner),
				},
			},
			{
				Phase: "Phase 3", Title: "Beta Launch & Iteration", Duration: "Weeks 13-18", Status: "upcoming",
				Tasks: []string{
					"Launch beta to 50-100 early adopters",
					"Collect and analyze user feedback systematically",
					"Fix critical bugs and improve UX based on feedback",
					"Implement 2-3 most requested features",
					"Set up customer support channels",
					"Create onboarding flow and documentation",
					"Start building social media presence",
				},
			},
			{
				Phase: "Phase 4", Title: "Growth & Scaling", Duration: "Weeks 19-24", Status: "upcoming",
				Tasks: []string{
					"Public launch with marketing campaign",
					"Implement referral program for viral growth",
					"Optimize conversion funnel and reduce churn",
					"Scale infrastructure for growing user base",
					"Start content marketing and SEO efforts",
					pick("Focus on organic growth channels", "Run paid acquisition campaigns", lowBudget),
					"Explore partnership opportunities",
					"Plan next major feature releases",
				},
			},
		}
	}
}

// curatedIdeas is the fixed 3-idea template per category.
func curatedIdeas(category string) []Idea {
	ideasMap := map[string][]Idea{
		"tech": {
			{
				Title:       "AI-Powered Personal Finance Assistant",
				Description: "Smart budgeting app that uses AI to analyze spending patterns and provide personalized financial advice. Integrates with bank accounts for real-time insights.",
				Difficulty:  "Intermediate",
				Investment:  "₹3-6L",
				MarketSize:  "Large",
			},
			{
				Title:       "Remote Work Productivity Suite",
				Description: "All-in-one platform for remote teams with time tracking, focus modes, and AI-powered productivity insights. Helps distributed teams stay connected and efficient.",
				Difficulty:  "Advanced",
				Investment:  "₹5-10L",
				MarketSize:  "Growing",
			},
			{
				Title:       "Local Language Learning Platform",
				Description: "Interactive platform teaching Indian regional languages through gamification and AI speech recognition. Preserves cultural heritage while making learning fun.",
				Difficulty:  "Intermediate",
				Investment:  "₹2-5L",
				MarketSize:  "Medium",
			},
		},
		"saas": {
			{
				Title:       "Restaurant Management Cloud",
				Description: "Complete SaaS solution for restaurants with inventory management, online ordering, table reservations, and analytics. Helps small restaurants compete with chains.",
				Difficulty:  "Intermediate",
				Investment:  "₹4-8L",
				MarketSize:  "Large",
			},
			{
				Title:       "Freelancer Invoice & Tax Platform",
				Description: "Automated invoicing, expense tracking, and tax filing for freelancers and gig workers. Simplifies financial management for independent professionals.",
				Difficulty:  "Beginner",
				Investment:  "₹2-4L",
				MarketSize:  "Growing",
			},
			{
				Title:       "School Communication Hub",
				Description: "Platform connecting schools, teachers, parents, and students with announcements, assignments, and progress tracking. Modernizes school-home communication.",
				Difficulty:  "Intermediate",
				Investment:  "₹3-6L",
				MarketSize:  "Large",
			},
		},
		"ecommerce": {
			{
				Title:       "Sustainable Fashion Marketplace",
				Description: "Curated platform for eco-friendly and ethically made clothing. Connects conscious consumers with sustainable brands and local artisans.",
				Difficulty:  "Intermediate",
				Investment:  "₹5-10L",
				MarketSize:  "Growing",
			},
			{
				Title:       "Hyperlocal Grocery Delivery",
				Description: "Ultra-fast grocery delivery from local stores in 15-30 minutes. Focuses on tier-2 and tier-3 cities with strong local partnerships.",
				Difficulty:  "Advanced",
				Investment:  "₹8-15L",
				MarketSize:  "Large",
			},
			{
				Title:       "Handmade Crafts Platform",
				Description: "Online marketplace exclusively for Indian handmade products and crafts. Empowers rural artisans with direct access to urban customers.",
				Difficulty:  "Beginner",
				Investment:  "₹2-5L",
				MarketSize:  "Medium",
			},
		},
		"personal": {
			{
				Title:       "Career Coaching for Tech Professionals",
				Description: "One-on-one coaching and mentorship for software developers looking to advance their careers. Includes resume reviews, interview prep, and salary negotiation.",
				Difficulty:  "Beginner",
				Investment:  "₹50K-1L",
				MarketSize:  "Large",
			},
			{
				Title:       "Fitness & Nutrition Influencer",
				Description: "Build personal brand around holistic health with workout plans, meal prep guides, and wellness coaching. Monetize through courses and brand partnerships.",
				Difficulty:  "Intermediate",
				Investment:  "₹1-2L",
				MarketSize:  "Growing",
			},
			{
				Title:       "Financial Literacy Educator",
				Description: "Create content teaching personal finance, investing, and wealth building to young professionals. Revenue from courses, books, and speaking engagements.",
				Difficulty:  "Beginner",
				Investment:  "₹30K-80K",
				MarketSize:  "Large",
			},
		},
		"service": {
			{
				Title:       "AI-Powered Content Writing Agency",
				Description: "Content creation service using AI tools to deliver high-quality blogs, social media, and marketing copy at scale. Serves startups and SMBs.",
				Difficulty:  "Intermediate",
				Investment:  "₹2-4L",
				MarketSize:  "Large",
			},
			{
				Title:       "Virtual CFO for Startups",
				Description: "Part-time CFO services for early-stage startups. Handles financial planning, fundraising prep, and investor relations without full-time cost.",
				Difficulty:  "Advanced",
				Investment:  "₹1-3L",
				MarketSize:  "Growing",
			},
			{
				Title:       "Social Media Management Studio",
				Description: "Full-service social media management for local businesses. Creates content, manages communities, and runs ad campaigns for multiple clients.",
				Difficulty:  "Beginner",
				Investment:  "₹1-2L",
				MarketSize:  "Large",
			},
		},
		"offline": {
			{
				Title:       "Themed Café & Co-working Space",
				Description: "Hybrid space combining specialty coffee shop with co-working facilities. Targets freelancers and remote workers seeking community and productivity.",
				Difficulty:  "Intermediate",
				Investment:  "₹10-20L",
				MarketSize:  "Growing",
			},
			{
				Title:       "Boutique Fitness Studio",
				Description: "Specialized fitness studio focusing on specific workout style (yoga, HIIT, dance). Creates strong community with personalized attention.",
				Difficulty:  "Intermediate",
				Investment:  "₹5-12L",
				MarketSize:  "Medium",
			},
			{
				Title:       "Kids Activity Center",
				Description: "After-school activity center offering coding, arts, sports, and life skills workshops for children. Fills gap in quality extracurricular education.",
				Difficulty:  "Advanced",
				Investment:  "₹8-15L",
				MarketSize:  "Growing",
			},
		},
	}
	return ideasMap[categoryKey(category)]
}

// prefix returns at most n characters of s, never splitting a rune.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
