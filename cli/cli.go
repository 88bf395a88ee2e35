package cli

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"dcmedit/dcm/dtag"
	"dcmedit/edit"
	"dcmedit/render"
	"dcmedit/ui"
)

type (
	Args struct {
		Dump        *DumpCmd        `arg:"subcommand:dump"`
		Set         *SetCmd         `arg:"subcommand:set"`
		Remove      *RemoveCmd      `arg:"subcommand:remove"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
	}
	DumpCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"scan.dcm"`
		To    string `help:"path to destination file; print when omitted" placeholder:"scan.json"`
		Force bool   `help:"overwrite the destination file"`
	}
	SetCmd struct {
		File    string `arg:"required" help:"path to the file" placeholder:"scan.dcm"`
		Tag     string `arg:"required" help:"element tag" placeholder:"x00100010"`
		Seq     string `help:"sequence tag of a nested element" placeholder:"x0040a730"`
		Item    int    `help:"item index inside --seq"`
		VR      string `help:"value representation; dictionary VR when omitted" placeholder:"PN"`
		Value   string `arg:"required" help:"new value"`
		Replace bool   `help:"overwrite the original instead of writing a sibling"`
	}
	RemoveCmd struct {
		File    string `arg:"required" help:"path to the file" placeholder:"scan.dcm"`
		Tag     string `arg:"required" help:"element tag" placeholder:"x00100010"`
		Seq     string `help:"sequence tag of a nested element" placeholder:"x0040a730"`
		Item    int    `help:"item index inside --seq"`
		Replace bool   `help:"overwrite the original instead of writing a sibling"`
	}
	InteractiveCmd struct {
		File string `arg:"required" help:"path to the file" placeholder:"scan.dcm"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to inspect and edit DICOM files: dump a file's",
			"elements as JSON, set or remove single elements, or browse a",
			"file interactively.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func StartDumping(from string, to string, force bool) {
	if !CheckExistence(from) {
		println("Source file does not exist!")
		return
	}
	if to != "" && CheckExistence(to) && !force {
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		return
	}

	session, err := edit.Open(from)
	if err != nil {
		println("Error happened opening file: " + err.Error())
		return
	}
	decodedMap := render.ToOrderedMap(session.File().Data)
	decodedBytes, err := json.MarshalIndent(decodedMap, "", "  ")
	if err != nil {
		println("Error happened marshalling to JSON: " + err.Error())
		return
	}
	if to == "" {
		println(string(decodedBytes))
		return
	}
	if err := os.WriteFile(to, decodedBytes, 0o644); err != nil {
		println("Error happened writing to file at: " + to)
		return
	}
	println("Done dumping. Please check your result file at: " + to)
}

func StartSetting(cmd SetCmd) {
	address, err := buildAddress(cmd.Tag, cmd.Seq, cmd.Item)
	if err != nil {
		println("Invalid tag: " + err.Error())
		return
	}
	session, err := edit.Open(cmd.File)
	if err != nil {
		println("Error happened opening file: " + err.Error())
		return
	}

	vr := cmd.VR
	if vr == "" {
		if address.InSequence {
			vr = dtag.DictionaryVR(address.ElementTag)
		} else {
			vr = dtag.DictionaryVR(address.Tag)
		}
	}
	warnClass(address, vr)

	session.StageEdit(address, vr, cmd.Value)
	commit(session, cmd.File, cmd.Replace)
}

func StartRemoving(cmd RemoveCmd) {
	address, err := buildAddress(cmd.Tag, cmd.Seq, cmd.Item)
	if err != nil {
		println("Invalid tag: " + err.Error())
		return
	}
	session, err := edit.Open(cmd.File)
	if err != nil {
		println("Error happened opening file: " + err.Error())
		return
	}
	warnClass(address, "")

	session.StageRemoval(address)
	commit(session, cmd.File, cmd.Replace)
}

func buildAddress(tag string, seq string, item int) (edit.Address, error) {
	element, err := dtag.Parse(tag)
	if err != nil {
		return edit.Address{}, err
	}
	if seq == "" {
		return edit.TopLevel(element), nil
	}
	sequence, err := dtag.Parse(seq)
	if err != nil {
		return edit.Address{}, err
	}
	return edit.InItem(sequence, item, element), nil
}

func warnClass(address edit.Address, vr string) {
	tag := address.Tag
	if address.InSequence {
		tag = address.ElementTag
	}
	switch edit.Classify(tag, vr) {
	case edit.ClassImageCritical:
		println("Warning: " + tag.String() + " is image-critical. The image may become undisplayable.")
	case edit.ClassStandardRequired:
		println("Warning: " + tag.String() + " is required by the standard. Other tools may reject the result.")
	case edit.ClassBinary:
		println("Warning: " + tag.String() + " holds binary data.")
	}
}

func commit(session *edit.Session, path string, replace bool) {
	mode := edit.ModeNew
	if replace {
		mode = edit.ModeReplace
	}
	results, err := session.Commit(mode)
	if err != nil {
		println("Error happened committing: " + err.Error())
		return
	}
	failed := false
	for _, result := range results {
		if result.Err != nil {
			failed = true
			println("Change " + result.Op.String() + " " + result.Address.Key() + " failed: " + result.Err.Error())
		}
	}
	if failed {
		return
	}
	if mode == edit.ModeNew {
		println("Done. Please check your result file at: " + edit.OutputPath(path))
	} else {
		println("Done. The file was updated in place.")
	}
}

func StartInteractive(path string) {
	if !CheckExistence(path) {
		println("Source file does not exist!")
		return
	}
	ui.Start(path)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	switch {
	case args.Dump != nil:
		StartDumping(args.Dump.From, args.Dump.To, args.Dump.Force)
	case args.Set != nil:
		StartSetting(*args.Set)
	case args.Remove != nil:
		StartRemoving(*args.Remove)
	case args.Interactive != nil:
		StartInteractive(args.Interactive.File)
	default:
		parser.WriteHelp(os.Stdout)
	}
}
