// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

type Id int

const (
	NoEntrySuitableId Id = iota + 1
	EmptySubmitId
	StoreLoadFailedId
	ConfigLoadFailedId
	NotInteractiveId
	CommandNotFoundId
	SessionActiveId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation pages about this issue
	extLinks []HttpLink  // external links that might be useful for the user
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

// Render renders the issue markdown, followed by a "See also" list of its links,
// with the glamour style at stylePath ("dark", "light", "notty", or a JSON file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range slices.Concat(i.docLinks, i.extLinks) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	noEntrySuitableIssue = &Issue{
		id: NoEntrySuitableId,
		mdMsg: `
# No entry suitable for this command!

The command only works on existing entries of certain types, and none of the
entries in the store has one of those types.

## Things you can try:
- List the entries the command would accept:
~~~
$ regview list insert-entry
~~~

- List every entry and its type:
~~~
$ regview list view-entry
~~~

- Check which types each command accepts:
~~~
$ regview commands
~~~`,
		docLinks: []HttpLink{"https://github.com/regview/regview#commands"},
	}

	emptySubmitIssue = &Issue{
		id: EmptySubmitId,
		mdMsg: `
# Entry key cannot be empty!

The prompt was submitted before any key was typed.

## Things you can try:
- Type a single character naming the entry, then press enter
- Move through the preview pane with the arrow keys and press enter
- Press tab to be offered a free key (set-style commands only)`,
	}

	storeLoadFailedIssue = &Issue{
		id: StoreLoadFailedId,
		mdMsg: `
# Failed to load the entry store!

The entry snapshot file could not be read or does not match the store schema.

## Things you can try:
- Check that the file exists and ends in ` + "`.cue`" + ` or ` + "`.toml`" + `
- Make sure every entry key is a single character and appears only once
- Run with verbose mode for more details:
~~~
$ regview --verbose list --store entries.cue
~~~

## Example store:
~~~cue
entries: [
	{key: "a", type: "text", text: "hello world"},
	{key: "n", type: "number", number: 42},
	{key: "p", type: "location", buffer: "main.go", offset: 120},
]
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the regview configuration file.

## Configuration file locations:
- Linux: ~/.config/regview/config.cue
- macOS: ~/Library/Application Support/regview/config.cue
- Windows: %APPDATA%\regview\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ regview config init
~~~

- Check the configuration syntax
- Show the configuration currently in effect:
~~~
$ regview config show
~~~

## Example configuration:
~~~cue
preview: {
	mode: "confirm-on-repeat"
}
pane: {
	border: "rounded"
	max_height: 8
}
~~~`,
	}

	notInteractiveIssue = &Issue{
		id: NotInteractiveId,
		mdMsg: `
# No terminal to prompt on!

regview needs an interactive terminal to read keys, and standard input is not one.

## Things you can try:
- Run the command from a terminal
- Replay the keystrokes instead:
~~~
$ regview pick insert-entry --keys 'a<enter>'
~~~`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not registered!

The command identity has no descriptor, so the default overwrite policy applies
and every entry is listed.

## Things you can try:
- List the registered commands:
~~~
$ regview commands
~~~

- Check for typos in the command identity`,
	}

	sessionActiveIssue = &Issue{
		id: SessionActiveId,
		mdMsg: `
# A selection is already in progress!

Another entry selection is waiting for input and this host does not allow nested
prompts.

## Things you can try:
- Finish or abort the current selection first`,
	}

	issues = map[Id]*Issue{
		noEntrySuitableIssue.Id():  noEntrySuitableIssue,
		emptySubmitIssue.Id():      emptySubmitIssue,
		storeLoadFailedIssue.Id():  storeLoadFailedIssue,
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		notInteractiveIssue.Id():   notInteractiveIssue,
		commandNotFoundIssue.Id():  commandNotFoundIssue,
		sessionActiveIssue.Id():    sessionActiveIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := maps.Values(issues)
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
