package generator

import "github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"

// namedArg is an optional string argument with its name in each binding.
type namedArg struct {
	python     string
	typescript string
	value      string
}

// presentArgs keeps the args whose value is set, preserving order.
func presentArgs(args ...namedArg) []namedArg {
	out := args[:0]
	for _, a := range args {
		if config.IsSet(a.value) {
			out = append(out, a)
		}
	}
	return out
}

// clientArgs lists the configured client options.
func clientArgs(c *config.Client) []namedArg {
	if c == nil {
		return nil
	}
	return presentArgs(
		namedArg{python: "api_url", typescript: "apiUrl", value: c.APIURL},
		namedArg{python: "target", typescript: "target", value: c.Target},
	)
}

// gitCloneArgs lists url and path followed by whichever optional clone
// options are set. Unset options are left out entirely.
func gitCloneArgs(g *config.GitClone) []namedArg {
	return presentArgs(
		namedArg{python: "url", typescript: "url", value: g.URL},
		namedArg{python: "path", typescript: "path", value: g.Path},
		namedArg{python: "branch", typescript: "branch", value: g.Branch},
		namedArg{python: "commit_id", typescript: "commitId", value: g.CommitID},
		namedArg{python: "username", typescript: "username", value: g.Username},
		namedArg{python: "password", typescript: "password", value: g.Password},
	)
}

// gitClonePositional returns the clone argument literals in SDK parameter
// order (url, path, branch, commitId, username, password), ending at the
// last one that is set. Unset options before it are passed as undefined.
func gitClonePositional(g *config.GitClone) []string {
	values := []string{g.URL, g.Path, g.Branch, g.CommitID, g.Username, g.Password}

	last := 1
	for i := len(values) - 1; i > 1; i-- {
		if config.IsSet(values[i]) {
			last = i
			break
		}
	}

	args := make([]string, 0, last+1)
	for _, v := range values[:last+1] {
		if config.IsSet(v) {
			args = append(args, stringLiteral(v))
		} else {
			args = append(args, "undefined")
		}
	}
	return args
}
