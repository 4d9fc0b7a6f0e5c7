package engine

// ModalKind selects how a modal is styled.
type ModalKind int

const (
	ModalInfo ModalKind = iota
	ModalWarning
	ModalError
)

func (k ModalKind) String() string {
	switch k {
	case ModalWarning:
		return "warning"
	case ModalError:
		return "error"
	default:
		return "info"
	}
}

// Input is a named text field on a screen.
type Input struct {
	Name        string
	Placeholder string
}

// Action is a labelled button. Run receives the current input values keyed
// by Input.Name.
type Action struct {
	Label string
	Run   func(values map[string]string)
}

// Screen is a titled page with optional inputs and actions.
type Screen struct {
	Title   string
	Body    string
	Inputs  []Input
	Actions []Action
}

// Modal is an acknowledgment dialog.
type Modal struct {
	Kind    ModalKind
	Title   string
	Message string
}

// Presenter renders what the controller asks for. Invoking a screen action is
// the only way control comes back into the controller.
type Presenter interface {
	PresentScreen(s Screen)
	PresentModal(m Modal)
}
