package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred         string
	InitialisingStore     string
	EnterAuthDetails      string
	StoringSecret         string
	EnterServerURL        string
	ErasedCredentials     string
	NoHomeDirError        string
	CredentialsNotFound   string
	MalformedInputError   string
	PassCommandError      string
	StoreAccessError      string
	InvalidEncodingError  string
	MissingSubcommand     string
	UnknownSubcommand     string
	AfterHelp             string
	InitDescription       string
	InitKeyIDDescription  string
	StoreDescription      string
	GetDescription        string
	ListDescription       string
	EraseDescription      string
	VersionDescription    string
	ConfigFlagDescription string
	DebugFlagDescription  string
}

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:         "An error occurred!",
		InitialisingStore:     "Initialising password store in '{{dir}}' with key {{key}}",
		EnterAuthDetails:      "Enter auth details:",
		StoringSecret:         "Storing secret under {{entry}}",
		EnterServerURL:        "Enter the server url:",
		ErasedCredentials:     "Successfully erased server credentials.",
		NoHomeDirError:        "Could not find your home directory. Set PASSWORD_STORE_DIR to say where your password store is.",
		CredentialsNotFound:   "No entry for the given server found.",
		MalformedInputError:   "Could not understand the input: {{error}}",
		PassCommandError:      "Could not run the password store: {{error}}",
		StoreAccessError:      "Could not access the password store: {{error}}",
		InvalidEncodingError:  "The password store holds something that isn't a valid entry: {{error}}",
		MissingSubcommand:     "Please provide a subcommand",
		UnknownSubcommand:     "Unknown subcommand: {{subcommand}}",
		AfterHelp:             "This program is intended as a substitute for docker-credential-pass.\nFor more information, see https://github.com/christophe-duc/docker-credential-truth",
		InitDescription:       "Initialises the credential helper for the current user.",
		InitKeyIDDescription:  "The ID of the GPG key to initialise your pass store with.",
		StoreDescription:      "Stores the credentials sent to stdin.",
		GetDescription:        "Retrieves the credentials for the URL sent to stdin.",
		ListDescription:       "Lists all stored credentials for the current user.",
		EraseDescription:      "Deletes all credentials for the URL sent to stdin.",
		VersionDescription:    "Prints the version.",
		ConfigFlagDescription: "Print the default config",
		DebugFlagDescription:  "Log to development.log in the config directory",
	}
}
