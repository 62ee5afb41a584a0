package deploy

import "fmt"

// Step is one entry of a parameter set: either a field to resolve or a checkpoint
// at which the record is persisted.
type Step struct {
	Field *Field
	Save  bool
}

func Ask(f Field) Step {
	return Step{Field: &f}
}

func Checkpoint() Step {
	return Step{Save: true}
}

// Script is a forge script target. Verified scripts also pass the Etherscan key and
// --verify.
type Script struct {
	Path     string
	Contract string
	Verify   bool
}

// Args returns the forge argument template with ${key} placeholders.
func (s Script) Args() []string {
	args := []string{
		"script", fmt.Sprintf("%s:%s", s.Path, s.Contract),
		"--fork-url", "${" + EthereumRPCURL.Key + "}",
	}
	if s.Verify {
		args = append(args, "--etherscan-api-key", "${"+EtherscanAPIKey.Key+"}")
	}
	args = append(args, "--broadcast")
	if s.Verify {
		args = append(args, "--verify")
	}
	return append(args, "-vvvv")
}

// Command is a named parameter set followed by exactly one forge run.
type Command struct {
	Name  string
	Usage string
	Steps []Step

	Script Script

	// Status messages; ${key} placeholders are rendered from the record.
	Running string
	Success string
	Failure string
}

// Fields returns the fields the command collects, in order.
func (c Command) Fields() []Field {
	var fields []Field
	for _, step := range c.Steps {
		if step.Field != nil {
			fields = append(fields, *step.Field)
		}
	}
	return fields
}
