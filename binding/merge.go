package binding

import (
	"fmt"

	"github.com/streambind/streambind-go/binder"
	"github.com/streambind/streambind-go/config"
)

// mergeExtendedDefaults merges the binder's own default properties into a
// channel's extension object. Two independent passes against the same
// configuration source: a recording bind at the channel-specific extension
// path captures which fields the user actually supplied (presence, not
// value), then the binder defaults are bound at their root and copied onto
// every field outside that explicit-set. A binder without a defaults root
// or provider makes this a no-op.
func mergeExtendedDefaults(src config.Source, epb binder.ExtendedPropertiesBinder, extension any, producer bool, name string) error {
	if extension == nil {
		return nil
	}
	defaultsRoot := epb.DefaultsRoot()
	if defaultsRoot.IsEmpty() {
		return nil
	}
	provider := epb.NewPropertiesProvider()
	if provider == nil {
		return nil
	}

	direction := "consumer"
	if producer {
		direction = "producer"
	}

	// The binder's channel-specific extension properties live next to its
	// defaults root: <parent of defaults root>.bindings.<name>.<direction>.
	channelRoot := defaultsRoot.Parent().Append("bindings").Append(name).Append(direction)

	explicit, err := config.BindStructRecorded(src, channelRoot, extension)
	if err != nil {
		return fmt.Errorf("binding: failed to record explicit properties for %q: %w", name, err)
	}

	if err := config.BindStruct(src, defaultsRoot, provider); err != nil {
		return fmt.Errorf("binding: failed to bind binder defaults for %q: %w", name, err)
	}

	defaults := provider.ConsumerExtension()
	if producer {
		defaults = provider.ProducerExtension()
	}
	if defaults == nil {
		return nil
	}

	return config.MergeUnset(extension, defaults, explicit)
}
