package slack

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/albumlist/albumlist-relay/pkg/clients/database"
)

// Command is the first word of an /albumlist invocation
type Command string

const (
	CommandHelp        Command = "help"
	CommandGet         Command = "get"
	CommandURL         Command = "url"
	CommandName        Command = "name"
	CommandRegister    Command = "register"
	CommandSet         Command = "set"
	CommandCreate      Command = "create"
	CommandRemove      Command = "remove"
	CommandCheck       Command = "check"
	CommandScale       Command = "scale"
	CommandAOTDChannel Command = "aotd_channel"
	CommandSlack       Command = "slack"
	CommandHeroku      Command = "heroku"

	CommandCount              Command = "count"
	CommandTest               Command = "test"
	CommandProcessAlbums      Command = "process_albums"
	CommandProcessCheck       Command = "process_check"
	CommandProcessCovers      Command = "process_covers"
	CommandProcessDuplicates  Command = "process_duplicates"
	CommandProcessTags        Command = "process_tags"
	CommandProcessUnavailable Command = "process_unavailable"
	CommandClearCache         Command = "clear_cache"
	CommandRestore            Command = "restore"
	CommandFeedback           Command = "feedback"
)

// commands lists every command a team admin can run
var commands = []Command{
	CommandHelp,
	CommandGet,
	CommandURL,
	CommandName,
	CommandRegister,
	CommandSet,
	CommandCreate,
	CommandRemove,
	CommandCheck,
	CommandScale,
	CommandAOTDChannel,
	CommandSlack,
	CommandHeroku,
	CommandCount,
	CommandTest,
	CommandProcessAlbums,
	CommandProcessCheck,
	CommandProcessCovers,
	CommandProcessDuplicates,
	CommandProcessTags,
	CommandProcessUnavailable,
	CommandClearCache,
	CommandRestore,
	CommandFeedback,
}

type invocation struct {
	request CommandRequest
	mapping *database.TeamMapping
	args    []string
}

type commandHandler func(s *service, ctx context.Context, inv invocation) (*Response, error)

// localCommands are answered by the relay itself
var localCommands = map[Command]commandHandler{
	CommandHelp:        (*service).help,
	CommandGet:         (*service).getTarget,
	CommandURL:         (*service).getTarget,
	CommandName:        (*service).getName,
	CommandRegister:    (*service).register,
	CommandSet:         (*service).register,
	CommandCreate:      (*service).create,
	CommandRemove:      (*service).remove,
	CommandCheck:       (*service).checkCommand,
	CommandScale:       (*service).scale,
	CommandAOTDChannel: (*service).aotdChannel,
	CommandSlack:       (*service).slackAuth,
	CommandHeroku:      (*service).herokuAuth,
}

// platformCommands need the Heroku integration and are refused while it is disabled
var platformCommands = map[Command]bool{
	CommandName:        true,
	CommandCreate:      true,
	CommandScale:       true,
	CommandAOTDChannel: true,
	CommandHeroku:      true,
}

// forwardedCommands are relayed to the team's albumlist under /slack/<subpath>
var forwardedCommands = map[Command]string{
	CommandCount:              "count",
	CommandTest:               "test",
	CommandProcessAlbums:      "process/albums",
	CommandProcessCheck:       "process/check",
	CommandProcessCovers:      "process/covers",
	CommandProcessDuplicates:  "process/duplicates",
	CommandProcessTags:        "process/tags",
	CommandProcessUnavailable: "process/unavailable",
	CommandClearCache:         "clear_cache",
	CommandRestore:            "restore",
	CommandFeedback:           "feedback",
}

func init() {
	if err := validateCommands(); err != nil {
		panic(err)
	}
}

// validateCommands makes sure every command resolves to exactly one handler
func validateCommands() error {
	known := map[Command]bool{}
	for _, c := range commands {
		known[c] = true
		_, isLocal := localCommands[c]
		_, isForwarded := forwardedCommands[c]
		if isLocal == isForwarded {
			return fmt.Errorf("Command %v needs exactly one of a local handler or a forward path", c)
		}
	}
	for c := range localCommands {
		if !known[c] {
			return fmt.Errorf("Local handler for unlisted command %v", c)
		}
	}
	for c := range forwardedCommands {
		if !known[c] {
			return fmt.Errorf("Forward path for unlisted command %v", c)
		}
	}
	return nil
}

func commandList() string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, string(c))
	}
	sort.Strings(names)

	return strings.Join(names, "\n")
}

// parseCommand splits the text into the command and its arguments
func parseCommand(text string) (Command, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}
	return Command(strings.ToLower(fields[0])), fields[1:]
}
