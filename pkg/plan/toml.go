package plan

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

func unmarshalTOML(data []byte, pf *planFile) error {
	md, err := toml.Decode(string(data), pf)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %s", undecoded[0])
	}
	return nil
}
