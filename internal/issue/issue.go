// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	NoVersionSpecifiedId
	InterpreterNotFoundId
	EnvironmentExistsId
	CreationFailedId
	EnvironmentNotFoundId
	DeletionFailedId
	InvalidNameId
	ShellSpawnFailedId
	RegistryRootUnavailableId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue's markdown with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The zap config file could not be read or did not match the schema.

## Things you can try:
- Show where zap looks for its config:
~~~
$ zap config path
~~~
- Write a fresh default config to compare against:
~~~
$ zap config init
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/tour/"},
	}

	noVersionSpecifiedIssue = &Issue{
		id: NoVersionSpecifiedId,
		mdMsg: `
# No Python version given!

` + "`zap create`" + ` needs a version tag, either on the command line or as your default.

## Things you can try:
- Pass the version explicitly:
~~~
$ zap create 3.11 myenv
~~~
- Or set a default once:
~~~
$ zap set-default 3.11
~~~`,
	}

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# Python interpreter not found!

No installed interpreter reports the requested version tag.

## Things you can try:
- List the interpreters zap can see:
~~~
$ zap list
~~~
- On Windows, check the launcher output with ` + "`py -0p`" + `
- On Linux and macOS, make sure a ` + "`python3.N`" + ` executable is on your PATH`,
		extLinks: []HttpLink{"https://docs.python.org/3/using/windows.html#python-launcher-for-windows"},
	}

	environmentExistsIssue = &Issue{
		id: EnvironmentExistsId,
		mdMsg: `
# Environment already exists!

Something already occupies that name under this Python version, so zap will not overwrite it.

## Things you can try:
- Pick another name
- Or delete the old environment first:
~~~
$ zap delete myenv --version 3.11
~~~`,
	}

	creationFailedIssue = &Issue{
		id: CreationFailedId,
		mdMsg: `
# Environment creation failed!

The interpreter's venv module reported an error. The partial directory was removed.

## Things you can try:
- On Debian and Ubuntu, install the venv package for your Python, e.g. ` + "`python3.11-venv`" + `
- Run the interpreter's venv module yourself to see the full output:
~~~
$ python3.11 -m venv /tmp/probe-env
~~~`,
		extLinks: []HttpLink{"https://docs.python.org/3/library/venv.html"},
	}

	environmentNotFoundIssue = &Issue{
		id: EnvironmentNotFoundId,
		mdMsg: `
# Environment not found!

No directory with a ` + "`pyvenv.cfg`" + ` marker matched that name.

## Things you can try:
- List existing environments:
~~~
$ zap list
~~~
- Drop ` + "`--version`" + ` to search every Python version`,
	}

	deletionFailedIssue = &Issue{
		id: DeletionFailedId,
		mdMsg: `
# Environment deletion failed!

Some files could not be removed, so the environment may be partially deleted.

## Things you can try:
- Close any shell or editor using the environment and retry
- Check file permissions inside the environment directory`,
	}

	invalidNameIssue = &Issue{
		id: InvalidNameId,
		mdMsg: `
# Invalid name!

Environment names and version tags become directory names under the registry root.
They must not be empty, must not be ` + "`.`" + ` or ` + "`..`" + `, and must not contain path separators.
Windows device names such as ` + "`CON`" + ` or ` + "`NUL`" + ` are rejected everywhere.`,
	}

	shellSpawnFailedIssue = &Issue{
		id: ShellSpawnFailedId,
		mdMsg: `
# Could not start an interactive shell!

The activation command was printed; you can still run it yourself.

## Things you can try:
- Choose another shell in your config:
~~~cue
activation: posix_shell: "zsh"
~~~
- On Windows, PowerShell may block activation scripts:
~~~
Set-ExecutionPolicy RemoteSigned -Scope CurrentUser
~~~`,
		extLinks: []HttpLink{"https://learn.microsoft.com/powershell/module/microsoft.powershell.core/about/about_execution_policies"},
	}

	registryRootUnavailableIssue = &Issue{
		id: RegistryRootUnavailableId,
		mdMsg: `
# Registry root unavailable!

zap keeps every environment under one directory and could not create or read it.

## Things you can try:
- Point zap somewhere writable:
~~~
$ export ENV_ROOT="$HOME/venvs"
~~~
- Or set ` + "`env_root`" + ` in your config file`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():        configLoadFailedIssue,
		noVersionSpecifiedIssue.Id():      noVersionSpecifiedIssue,
		interpreterNotFoundIssue.Id():     interpreterNotFoundIssue,
		environmentExistsIssue.Id():       environmentExistsIssue,
		creationFailedIssue.Id():          creationFailedIssue,
		environmentNotFoundIssue.Id():     environmentNotFoundIssue,
		deletionFailedIssue.Id():          deletionFailedIssue,
		invalidNameIssue.Id():             invalidNameIssue,
		shellSpawnFailedIssue.Id():        shellSpawnFailedIssue,
		registryRootUnavailableIssue.Id(): registryRootUnavailableIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
