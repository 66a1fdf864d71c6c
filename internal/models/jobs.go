package models

import "encoding/json"

// CompanyRef is a company mention in a job suggestion. The model returns these
// either as a plain name string or as an object with a careers page link; both
// decode into this one shape so rendering never re-inspects the raw JSON.
type CompanyRef struct {
	Name       string `json:"name"`
	CareersURL string `json:"careers_url,omitempty"`
}

func (c *CompanyRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Name = name
		c.CareersURL = ""
		return nil
	}

	type companyRef CompanyRef
	var ref companyRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return err
	}
	*c = CompanyRef(ref)
	return nil
}

// JobSuggestion is one suggested role from the job suggestor. Order within the
// model's array is preserved for display.
type JobSuggestion struct {
	Role        string       `json:"role"`
	Description string       `json:"description"`
	Skills      []string     `json:"skills,omitempty"`
	Companies   []CompanyRef `json:"companies"`
	HiringNow   []CompanyRef `json:"hiring_now"`
}
