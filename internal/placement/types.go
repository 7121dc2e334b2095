package placement

// Experience is one curated interview story returned by /experiences.
type Experience struct {
	CandidateProfile string   `json:"candidate_profile"`
	Role             string   `json:"role"`
	Rounds           []string `json:"rounds"`
	QuestionsAsked   []string `json:"questions_asked"`
	Verdict          string   `json:"verdict"`
	Tips             string   `json:"tips"`
}

// Selected reports whether the candidate received an offer.
func (e Experience) Selected() bool {
	return containsFold(e.Verdict, "selected")
}

// Recommendation pairs a missing skill with advice on closing the gap.
type Recommendation struct {
	Skill  string `json:"skill"`
	Action string `json:"action"`
}

// SkillReport is the response of /analyze-skills.
type SkillReport struct {
	PresentSkills   []string         `json:"present_skills"`
	MissingSkills   []string         `json:"missing_skills"`
	Recommendations []Recommendation `json:"recommendations"`
}

// ATSReport is the response of /analyze-ats.
type ATSReport struct {
	Score               int      `json:"ats_score"`
	MissingKeywords     []string `json:"missing_keywords"`
	FormattingIssues    []string `json:"formatting_issues"`
	TailoredSuggestions []string `json:"tailored_suggestions"`
}

// Grade buckets the ATS score the way the resume page colors it.
func (r ATSReport) Grade() string {
	switch {
	case r.Score >= 80:
		return "strong"
	case r.Score >= 60:
		return "fair"
	default:
		return "weak"
	}
}

// Upload is a resume submitted to one of the analyzer endpoints.
type Upload struct {
	Company string
	Role    string
	Path    string
}
