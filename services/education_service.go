package services

// Static educational content. Icons are fixed keys from the same enumerated
// set the category catalog uses; clients map them to assets, the server
// never reflects over icon names.

type EducationFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type EducationTopic struct {
	Title string         `json:"title"`
	Icon  string         `json:"icon"`
	Color string         `json:"color"`
	FAQs  []EducationFAQ `json:"faqs"`
}

var educationTopics = []EducationTopic{
	{
		Title: "Plastic Recycling",
		Icon:  "recycle",
		Color: "#3b82f6",
		FAQs: []EducationFAQ{
			{
				Question: "Which plastics can I recycle?",
				Answer:   "Most bottles, containers and rigid packaging marked with resin codes 1 (PET) and 2 (HDPE) are widely recyclable. Rinse them, remove caps and keep them dry.",
			},
			{
				Question: "Do plastic bags go in the recycling bin?",
				Answer:   "Usually not. Film plastics jam sorting machinery; take them to dedicated store drop-offs instead.",
			},
		},
	},
	{
		Title: "Organic Waste",
		Icon:  "leaf",
		Color: "#10b981",
		FAQs: []EducationFAQ{
			{
				Question: "What is composting?",
				Answer:   "Composting is the natural process of decomposing organic waste into nutrient-rich soil. It includes fruit and vegetable scraps, coffee grounds, eggshells, and yard waste. Avoid meat, dairy, and oils.",
			},
			{
				Question: "Why compost?",
				Answer:   "Composting reduces landfill waste by up to 30%, creates free fertilizer for plants, reduces methane emissions, improves soil health, and helps retain moisture in soil.",
			},
		},
	},
	{
		Title: "Paper & Cardboard",
		Icon:  "file-text",
		Color: "#f59e0b",
		FAQs: []EducationFAQ{
			{
				Question: "What difference does recycling paper make?",
				Answer:   "Recycling one ton of paper saves 17 trees, 7,000 gallons of water, 380 gallons of oil, and 3 cubic yards of landfill space. It also reduces greenhouse gas emissions.",
			},
			{
				Question: "Can greasy pizza boxes be recycled?",
				Answer:   "Tear off and compost the soiled parts; recycle the clean cardboard. Grease contaminates the paper fiber stream.",
			},
		},
	},
	{
		Title: "E-Waste",
		Icon:  "cpu",
		Color: "#8b5cf6",
		FAQs: []EducationFAQ{
			{
				Question: "Where does e-waste go?",
				Answer:   "Electronics never belong in regular bins. Take devices, batteries and cables to designated e-waste collection points where metals are recovered and hazardous parts handled safely.",
			},
		},
	},
	{
		Title: "Hazardous Waste",
		Icon:  "alert-triangle",
		Color: "#ef4444",
		FAQs: []EducationFAQ{
			{
				Question: "What counts as hazardous household waste?",
				Answer:   "Paints, solvents, pesticides, motor oil, fluorescent bulbs and most batteries. They need municipal hazardous-waste drop-off, never the regular bin or drain.",
			},
		},
	},
	{
		Title: "Waste Reduction Tips",
		Icon:  "trending-down",
		Color: "#06b6d4",
		FAQs: []EducationFAQ{
			{
				Question: "What are the 5 Rs?",
				Answer:   "1. Refuse - Say no to single-use items. 2. Reduce - Buy only what you need. 3. Reuse - Choose reusable over disposable. 4. Repurpose - Find new uses for old items. 5. Recycle - Properly sort recyclables.",
			},
			{
				Question: "Easy ways to cut household waste?",
				Answer:   "Use reusable bags, bottles, and containers. Buy in bulk to reduce packaging. Choose products with minimal packaging. Repair instead of replace. Donate unwanted items. Compost organic waste.",
			},
		},
	},
}

// EducationTopics returns the curated topic catalog.
func EducationTopics() []EducationTopic {
	return educationTopics
}
