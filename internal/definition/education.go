package definition

// SectionKind discriminates the education section union on the wire.
type SectionKind string

const (
	SectionProse       SectionKind = "prose"
	SectionList        SectionKind = "list"
	SectionCards       SectionKind = "cards"
	SectionCodeExample SectionKind = "code-example"
)

// Severity types a list item so the renderer can pick an icon/colour.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityTip     Severity = "tip"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// EducationSection is a sealed union over the four section variants. The
// unexported method keeps the set closed so switches over concrete types stay
// exhaustive within this module.
type EducationSection interface {
	SectionID() string
	Kind() SectionKind

	isEducationSection()
}

// ProseSection carries a single block of default prose content (markdown).
type ProseSection struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (s *ProseSection) SectionID() string  { return s.ID }
func (s *ProseSection) Kind() SectionKind  { return SectionProse }
func (*ProseSection) isEducationSection() {}

// ListItem is one entry of a list section.
type ListItem struct {
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

// ListSection carries an ordered list of typed items.
type ListSection struct {
	ID    string     `json:"id"`
	Items []ListItem `json:"items"`
}

func (s *ListSection) SectionID() string  { return s.ID }
func (s *ListSection) Kind() SectionKind  { return SectionList }
func (*ListSection) isEducationSection() {}

// Card is one title/description pair of a cards section.
type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CardsSection carries an ordered set of cards.
type CardsSection struct {
	ID    string `json:"id"`
	Cards []Card `json:"cards"`
}

func (s *CardsSection) SectionID() string  { return s.ID }
func (s *CardsSection) Kind() SectionKind  { return SectionCards }
func (*CardsSection) isEducationSection() {}

// CodeExample is one worked example with ordered steps and a result string.
type CodeExample struct {
	Title  string   `json:"title"`
	Steps  []string `json:"steps"`
	Result string   `json:"result"`
}

// CodeExampleSection carries a description plus ordered worked examples.
type CodeExampleSection struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Examples    []CodeExample `json:"examples"`
}

func (s *CodeExampleSection) SectionID() string  { return s.ID }
func (s *CodeExampleSection) Kind() SectionKind  { return SectionCodeExample }
func (*CodeExampleSection) isEducationSection() {}
