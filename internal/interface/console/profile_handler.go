package console

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler { return &ProfileHandler{} }

// ShowData prints the signed-in user's own data.
func (h *ProfileHandler) ShowData(c *Context) (State, error) {
	c.Term.Println("\n" + c.Session.Details())
	return c.State, nil
}
