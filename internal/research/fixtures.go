package research

// Papers returns the sample paper collection. Callers receive a fresh slice
// header each call but share the backing records; treat them as read-only.
func Papers() []Paper {
	return []Paper{
		{
			ID:            "1",
			Title:         "Quantum Computing Applications in Cryptography: A Comprehensive Review",
			Abstract:      "This paper explores the intersection of quantum computing and cryptographic systems, analyzing both opportunities and threats posed by quantum algorithms to current security infrastructure.",
			Authors:       []string{"Dr. Alice Johnson", "Prof. Bob Smith"},
			Institution:   "MIT",
			PublishedDate: "2024-01-15",
			Tags:          []string{"quantum computing", "cryptography", "security", "algorithms"},
			Citations:     42,
			Downloads:     1250,
			DOI:           "10.1000/182",
			Status:        PaperPublished,
		},
		{
			ID:            "2",
			Title:         "Machine Learning Approaches to Climate Change Prediction",
			Abstract:      "We present novel machine learning models for improved climate prediction accuracy, incorporating satellite data and advanced neural network architectures.",
			Authors:       []string{"Dr. Carol Williams", "Dr. David Brown", "Prof. Eve Davis"},
			Institution:   "Stanford University",
			PublishedDate: "2024-01-10",
			Tags:          []string{"machine learning", "climate change", "prediction", "neural networks"},
			Citations:     28,
			Downloads:     892,
			DOI:           "10.1000/183",
			Status:        PaperPublished,
		},
		{
			ID:            "3",
			Title:         "Blockchain Technology in Supply Chain Management: Challenges and Solutions",
			Abstract:      "An analysis of blockchain implementation in supply chain systems, focusing on transparency, traceability, and efficiency improvements.",
			Authors:       []string{"Prof. Frank Miller", "Dr. Grace Wilson"},
			Institution:   "Harvard University",
			PublishedDate: "2024-01-05",
			Tags:          []string{"blockchain", "supply chain", "transparency", "efficiency"},
			Citations:     35,
			Downloads:     673,
			Status:        PaperUnderReview,
		},
	}
}

// Proposals returns the sample DAO proposal collection.
func Proposals() []Proposal {
	return []Proposal{
		{
			ID:             "1",
			Title:          "Research Grant for Quantum AI Development",
			Description:    "Proposal to allocate 10,000 REZ tokens for research into quantum artificial intelligence applications in drug discovery.",
			Type:           ProposalGrant,
			Proposer:       "Dr. Alice Johnson",
			VotesFor:       1250,
			VotesAgainst:   340,
			TotalVotes:     1590,
			EndDate:        "2024-02-15",
			Status:         ProposalActive,
			RequiredTokens: 100,
		},
		{
			ID:             "2",
			Title:          "New Peer Review Standards Implementation",
			Description:    "Implement enhanced peer review standards with mandatory conflict of interest declarations and double-blind review process.",
			Type:           ProposalGovernance,
			Proposer:       "Prof. Bob Smith",
			VotesFor:       2100,
			VotesAgainst:   450,
			TotalVotes:     2550,
			EndDate:        "2024-02-10",
			Status:         ProposalPassed,
			RequiredTokens: 50,
		},
		{
			ID:             "3",
			Title:          "Climate Research Emergency Fund",
			Description:    "Establish emergency funding pool of 25,000 REZ tokens for urgent climate research initiatives.",
			Type:           ProposalGrant,
			Proposer:       "Dr. Carol Williams",
			VotesFor:       890,
			VotesAgainst:   1200,
			TotalVotes:     2090,
			EndDate:        "2024-01-30",
			Status:         ProposalRejected,
			RequiredTokens: 75,
		},
	}
}

// DemoUser returns the sample member record used by the mock login flow.
func DemoUser() User {
	return User{
		ID:          "1",
		Name:        "Dr. Sarah Chen",
		Email:       "sarah.chen@university.edu",
		Institution: "MIT",
		Reputation:  4.8,
		RezTokens:   2500,
	}
}
