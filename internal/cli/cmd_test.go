package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/later/internal/domain"
	"github.com/alexanderramin/later/internal/repository"
	"github.com/alexanderramin/later/internal/service"
	"github.com/alexanderramin/later/internal/testutil"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by a temp JSON file. input feeds the line
// prompter; prompts are captured in the returned buffer.
func testApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	repo := repository.NewJSONDocumentRepo(testutil.DataFile(t, "later.json"))
	prompts := &bytes.Buffer{}
	return &App{
		Lists:  service.NewListService(repo, testutil.Clock(), prompts),
		Prompt: NewLinePrompter(strings.NewReader(input), prompts, testutil.Clock()),
		Now:    testutil.Clock(),
	}, prompts
}

// seedGroceries stores the groceries fixture alongside an empty default list.
func seedGroceries(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()
	_, err := app.Lists.Show(ctx, domain.DefaultList)
	require.NoError(t, err)
	_, err = app.Lists.CreateList(ctx, domain.Info{Title: "groceries"})
	require.NoError(t, err)
	for _, title := range []string{"milk", "party", "bread"} {
		_, err = app.Lists.AddItem(ctx, "groceries", nil, domain.Info{Title: title})
		require.NoError(t, err)
	}
	for _, title := range []string{"cake", "drinks"} {
		_, err = app.Lists.AddItem(ctx, "groceries", domain.IndexPath{1}, domain.Info{Title: title})
		require.NoError(t, err)
	}
}

// executeCmd runs a cobra command and captures stdout/stderr with ANSI
// styling removed.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(prepareArgs(root, args))
	err := root.Execute()
	return ansi.Strip(buf.String()), err
}

func TestRootCmd_ShowsDefaultList(t *testing.T) {
	app, prompts := testApp(t, "")

	out, err := executeCmd(t, app)
	require.NoError(t, err)

	assert.Equal(t, "   to-do\n0) Hello, world! (Today, 10:00am)\n", out)
	assert.Contains(t, prompts.String(), "Generating new storage file in ")
}

func TestRootCmd_UnknownList(t *testing.T) {
	app, _ := testApp(t, "")

	_, err := executeCmd(t, app, "chores")
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestRootCmd_ListNameAfterFlags(t *testing.T) {
	app, _ := testApp(t, "")
	var gotConfig string
	app.Setup = func(configFile string) error {
		gotConfig = configFile
		return nil
	}
	seedGroceries(t, app)

	out, err := executeCmd(t, app, "--config", "custom.yaml", "groceries", "add", "eggs")
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", gotConfig)
	assert.Contains(t, out, "   groceries\n")
	assert.Contains(t, out, "3) eggs\n")
}

func TestPrepareArgs(t *testing.T) {
	root := NewRootCmd(&App{})

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "empty", in: nil, want: nil},
		{name: "command first", in: []string{"add", "milk"}, want: []string{"add", "milk"}},
		{name: "alias first", in: []string{"rm", "0"}, want: []string{"rm", "0"}},
		{name: "flag first", in: []string{"--list", "x", "sort"}, want: []string{"--list", "x", "sort"}},
		{name: "list name", in: []string{"groceries", "add", "eggs"}, want: []string{"--list=groceries", "add", "eggs"}},
		{name: "list name alone", in: []string{"groceries"}, want: []string{"--list=groceries"}},
		{name: "help", in: []string{"help"}, want: []string{"help"}},
		{name: "list name after config flag", in: []string{"--config", "f.yaml", "groceries", "add", "milk"}, want: []string{"--config", "f.yaml", "--list=groceries", "add", "milk"}},
		{name: "list name after inline flag", in: []string{"--config=f.yaml", "groceries"}, want: []string{"--config=f.yaml", "--list=groceries"}},
		{name: "command after short list flag", in: []string{"-L", "chores", "sort"}, want: []string{"-L", "chores", "sort"}},
		{name: "list name after help flag", in: []string{"-h", "groceries"}, want: []string{"-h", "--list=groceries"}},
		{name: "after terminator", in: []string{"--", "groceries"}, want: []string{"--", "groceries"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prepareArgs(root, tt.in))
		})
	}
}

func TestAddCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "title words",
			args: []string{"groceries", "add", "free", "range", "eggs"},
			want: "3) free range eggs\n",
		},
		{
			name: "into sublist",
			args: []string{"groceries", "add", "1", "candles"},
			want: "   2) candles\n",
		},
		{
			name: "promotes entry",
			args: []string{"groceries", "a", "0", "oat"},
			want: "0---> milk\n   0) oat\n",
		},
		{
			name: "date flag",
			args: []string{"groceries", "add", "--date", "2025/06/16", "eggs"},
			want: "3) eggs (Tomorrow)\n",
		},
		{
			name: "time flag lands today",
			args: []string{"groceries", "add", "--time", "18:00", "eggs"},
			want: "3) eggs (Today, 06:00pm)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := testApp(t, "")
			seedGroceries(t, app)

			out, err := executeCmd(t, app, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestAddCmd_PromptsWithoutTitle(t *testing.T) {
	app, prompts := testApp(t, "eggs\nsoon\n2025/06/18\n\n")

	out, err := executeCmd(t, app, "add")
	require.NoError(t, err)

	assert.Contains(t, out, "1) eggs (upcoming Wednesday; in 3 days)\n")
	assert.Contains(t, prompts.String(), "Error parsing date (format: yyyy/mm/dd)")
}

func TestAddCmd_Errors(t *testing.T) {
	app, _ := testApp(t, "")
	seedGroceries(t, app)

	_, err := executeCmd(t, app, "groceries", "add", "9", "eggs")
	assert.ErrorIs(t, err, domain.ErrIndexTooBig)

	_, err = executeCmd(t, app, "groceries", "add", "0,0", "eggs")
	assert.ErrorIs(t, err, domain.ErrSubIndexLeaf)

	_, err = executeCmd(t, app, "groceries", "add", "--date", "tomorrow", "eggs")
	var parseErr *domain.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestRemoveCmd(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		args    []string
		wantErr error
		prompt  string
		gone    string
	}{
		{
			name:   "entry defaults to yes",
			input:  "\n",
			args:   []string{"groceries", "remove", "2"},
			prompt: "Remove entry 'bread'? (Y/n): ",
			gone:   "bread",
		},
		{
			name:    "sublist defaults to no",
			input:   "\n",
			args:    []string{"groceries", "rm", "1"},
			prompt:  "Remove sublist 'party'? (y/N): ",
			wantErr: domain.ErrCancelled,
		},
		{
			name:   "sublist confirmed",
			input:  "y\n",
			args:   []string{"groceries", "r", "1"},
			prompt: "Remove sublist 'party'? (y/N): ",
			gone:   "party",
		},
		{
			name: "yes flag skips prompt",
			args: []string{"groceries", "remove", "--yes", "0"},
			gone: "milk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, prompts := testApp(t, tt.input)
			seedGroceries(t, app)
			prompts.Reset()

			out, err := executeCmd(t, app, tt.args...)
			if tt.prompt != "" {
				assert.Contains(t, prompts.String(), tt.prompt)
			} else {
				assert.Empty(t, prompts.String())
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				list, err := app.Lists.Show(context.Background(), "groceries")
				require.NoError(t, err)
				assert.Equal(t, []string{"milk", "party", "bread"}, testutil.Titles(list))
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, out, tt.gone)
		})
	}
}

func TestRemoveCmd_DemotesEmptiedSublist(t *testing.T) {
	app, _ := testApp(t, "")
	seedGroceries(t, app)

	_, err := executeCmd(t, app, "groceries", "remove", "-y", "1,0")
	require.NoError(t, err)
	out, err := executeCmd(t, app, "groceries", "remove", "-y", "1,0")
	require.NoError(t, err)

	assert.Contains(t, out, "1) party\n")
}

func TestMoveCmd(t *testing.T) {
	app, _ := testApp(t, "")
	seedGroceries(t, app)

	out, err := executeCmd(t, app, "groceries", "move", "2", "1,0")
	require.NoError(t, err)
	assert.Equal(t, "   groceries\n0) milk\n1---> party\n   0) bread\n   1) cake\n   2) drinks\n", out)
}

func TestMoveCmd_FailureLeavesList(t *testing.T) {
	app, _ := testApp(t, "")
	seedGroceries(t, app)

	_, err := executeCmd(t, app, "groceries", "mv", "0", "7")
	require.ErrorIs(t, err, domain.ErrMoveFailed)

	out, err := executeCmd(t, app, "groceries")
	require.NoError(t, err)
	assert.Equal(t, "   groceries\n0) milk\n1---> party\n   0) cake\n   1) drinks\n2) bread\n", out)
}

func TestEditCmd_Flags(t *testing.T) {
	app, _ := testApp(t, "")

	out, err := executeCmd(t, app, "edit", "0", "--title", "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "0) Hi (Today, 10:00am)\n")

	out, err = executeCmd(t, app, "edit", "0", "--date", "2025/06/14")
	require.NoError(t, err)
	assert.Contains(t, out, "0) Hi (Yesterday, 10:00am)\n")

	out, err = executeCmd(t, app, "e", "0", "--no-date")
	require.NoError(t, err)
	assert.Contains(t, out, "0) Hi\n")
}

func TestEditCmd_Prompt(t *testing.T) {
	app, prompts := testApp(t, "renamed\n2025/06/20\n-\n")

	out, err := executeCmd(t, app, "edit", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "0) renamed (upcoming Friday; in 5 days)\n")
	assert.Contains(t, prompts.String(), "title [Hello, world!]: ")
}

func TestSortCmd(t *testing.T) {
	app, _ := testApp(t, "")
	_, err := executeCmd(t, app, "add", "undated")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "add", "--date", "2025/06/14", "overdue")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "sort")
	require.NoError(t, err)
	assert.Equal(t, "   to-do\n0) overdue (Yesterday)\n1) Hello, world! (Today, 10:00am)\n2) undated\n", out)
}

func TestListCmd_NoNamedLists(t *testing.T) {
	app, _ := testApp(t, "")

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Equal(t, "No named lists exist currently. (Use `later list --add` to create one.)\n", out)
}

func TestListCmd_AddRemoveEdit(t *testing.T) {
	app, _ := testApp(t, "y\nerrands\n2025/07/01\n\n")

	out, err := executeCmd(t, app, "list", "--add", "chores")
	require.NoError(t, err)
	assert.Contains(t, out, "added new to-do list: 'chores'\n")
	assert.Contains(t, out, "-> chores\n")

	out, err = executeCmd(t, app, "l", "--add=books")
	require.NoError(t, err)
	assert.Equal(t, "added new to-do list: 'books'\n-> books\n-> chores\n", out)

	_, err = executeCmd(t, app, "list", "--add", "books")
	assert.ErrorIs(t, err, domain.ErrDuplicateList)

	out, err = executeCmd(t, app, "list", "--remove", "books")
	require.NoError(t, err)
	assert.Equal(t, "removed to-do list: 'books'\n-> chores\n", out)

	out, err = executeCmd(t, app, "list", "--edit", "chores")
	require.NoError(t, err)
	assert.Equal(t, "-> errands (July 01; in 2 weeks)\n", out)
}

func TestListCmd_AddPrompts(t *testing.T) {
	app, _ := testApp(t, "holiday\n\n\n")

	out, err := executeCmd(t, app, "list", "--add")
	require.NoError(t, err)
	assert.Contains(t, out, "added new to-do list: 'holiday'\n")
}

func TestListCmd_Errors(t *testing.T) {
	app, _ := testApp(t, "n\n")
	seedGroceries(t, app)

	_, err := executeCmd(t, app, "list", "--remove", domain.DefaultList)
	assert.ErrorIs(t, err, domain.ErrDefaultList)

	_, err = executeCmd(t, app, "list", "--remove", "nope", "--yes")
	assert.ErrorIs(t, err, domain.ErrListNotFound)

	_, err = executeCmd(t, app, "list", "--remove", "groceries")
	assert.ErrorIs(t, err, domain.ErrCancelled)

	_, err = executeCmd(t, app, "list", "--add", "x", "--remove", "groceries")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "list", "stray")
	assert.Error(t, err)
}
