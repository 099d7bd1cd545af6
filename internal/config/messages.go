package config

import "fmt"

// Message is a title/body pair from the catalog. Bodies may carry fmt verbs
// filled in with company/position names and signed payment deltas.
type Message struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Format returns a copy with the body's placeholders filled in.
func (m Message) Format(args ...any) Message {
	return Message{Title: m.Title, Content: fmt.Sprintf(m.Content, args...)}
}

// Messages is the full catalog of player-facing texts.
type Messages struct {
	Welcome            Message `yaml:"welcome"`
	HeartAttack        Message `yaml:"heart_attack"`
	Finish             Message `yaml:"finish"`
	LowMoney           Message `yaml:"low_money"`
	MonthPayment       Message `yaml:"month_payment"`
	WorkInvite         Message `yaml:"work_invite"`
	NoWorkInvites      Message `yaml:"no_work_invites"`
	InterviewFailed    Message `yaml:"interview_failed"`
	NewJob             Message `yaml:"new_job"`
	StressWarning      Message `yaml:"stress_warning"`
	PromotionOk        Message `yaml:"promotion_ok"`
	PromotionNone      Message `yaml:"promotion_none"`
	WorkProgressNotice Message `yaml:"work_progress"`
	LostJob            Message `yaml:"lost_job"`
	DiseaseWarning     Message `yaml:"disease_warning"`
	DiseaseDeath       Message `yaml:"disease_death"`
	MadWarning         Message `yaml:"mad_warning"`
	MadDeath           Message `yaml:"mad_death"`
	NaturalDeath       Message `yaml:"natural_death"`
}
