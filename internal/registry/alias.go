package registry

// stdAliases maps public-facing std paths to the canonical paths their
// definitions live under. std re-exports much of alloc and core, and some
// of its own types sit in private submodules; the public path users know is
// not the path rustdoc records. The table is hand-curated from the std
// module index and matched exactly, with no prefix or case folding. Entries
// mapping a path to itself document that the public path is canonical.
var stdAliases = map[string]string{
	// Module alloc
	"std::alloc::Layout":      "core::alloc::layout::Layout",
	"std::alloc::LayoutError": "core::alloc::layout::LayoutError",
	"std::alloc::System":      "std::alloc::System",

	// Module any
	"std::any::TypeId": "core::any::TypeId",

	// Module array
	"std::array::IntoIter":          "core::array::iter::IntoIter",
	"std::array::TryFromSliceError": "core::array::TryFromSliceError",

	// Module ascii
	"std::ascii::EscapeDefault": "core::ascii::EscapeDefault",

	// Module backtrace
	"std::backtrace::Backtrace": "std::backtrace::Backtrace",

	// Module boxed
	"std::boxed::Box": "alloc::boxed::Box",

	// Module cell
	"std::cell::BorrowError":    "core::cell::BorrowError",
	"std::cell::BorrowMutError": "core::cell::BorrowMutError",
	"std::cell::Cell":           "core::cell::Cell",
	"std::cell::LazyCell":       "core::cell::lazy::LazyCell",
	"std::cell::OnceCell":       "core::cell::once::OnceCell",
	"std::cell::Ref":            "core::cell::Ref",
	"std::cell::RefCell":        "core::cell::RefCell",
	"std::cell::RefMut":         "core::cell::RefMut",
	"std::cell::UnsafeCell":     "core::cell::UnsafeCell",

	// Module char
	"std::char::CharTryFromError": "core::char::convert::CharTryFromError",
	"std::char::DecodeUtf16":      "core::char::decode::DecodeUtf16",
	"std::char::DecodeUtf16Error": "core::char::decode::DecodeUtf16Error",
	"std::char::EscapeDebug":      "core::char::EscapeDebug",
	"std::char::EscapeDefault":    "core::char::EscapeDefault",
	"std::char::EscapeUnicode":    "core::char::EscapeUnicode",
	"std::char::ParseCharError":   "core::char::convert::ParseCharError",
	"std::char::ToLowercase":      "core::char::ToLowercase",
	"std::char::ToUppercase":      "core::char::ToUppercase",
	"std::char::TryFromCharError": "core::char::TryFromCharError",

	// Module cmp
	"std::cmp::Reverse": "core::cmp::Reverse",

	// Module collections
	"std::collections::BTreeMap":        "alloc::collections::btree::map::BTreeMap",
	"std::collections::BTreeSet":        "alloc::collections::btree::set::BTreeSet",
	"std::collections::BinaryHeap":      "alloc::collections::binary_heap::BinaryHeap",
	"std::collections::HashMap":         "std::collections::hash::map::HashMap",
	"std::collections::HashSet":         "std::collections::hash::set::HashSet",
	"std::collections::LinkedList":      "alloc::collections::linked_list::LinkedList",
	"std::collections::TryReserveError": "alloc::collections::TryReserveError",
	"std::collections::VecDeque":        "alloc::collections::vec_deque::VecDeque",

	// Module ffi
	"std::ffi::CStr":                   "core::ffi::c_str::CStr",
	"std::ffi::CString":                "alloc::ffi::c_str::CString",
	"std::ffi::FromBytesUntilNulError": "core::ffi::c_str::FromBytesUntilNulError",
	"std::ffi::FromVecWithNulError":    "alloc::ffi::c_str::FromVecWithNulError",
	"std::ffi::IntoStringError":        "alloc::ffi::c_str::IntoStringError",
	"std::ffi::NulError":               "alloc::ffi::c_str::NulError",
	"std::ffi::OsStr":                  "std::ffi::os_str::OsStr",
	"std::ffi::OsString":               "std::ffi::os_str::OsString",

	// Module fmt
	"std::fmt::Arguments":   "core::fmt::Arguments",
	"std::fmt::DebugList":   "core::fmt::builder::DebugList",
	"std::fmt::DebugMap":    "core::fmt::builder::DebugMap",
	"std::fmt::DebugSet":    "core::fmt::builder::DebugSet",
	"std::fmt::DebugStruct": "core::fmt::builder::DebugStruct",
	"std::fmt::DebugTuple":  "core::fmt::builder::DebugTuple",
	"std::fmt::Error":       "core::fmt::Error",
	"std::fmt::Formatter":   "core::fmt::Formatter",

	// Module fs
	"std::fs::DirBuilder":  "std::fs::DirBuilder",
	"std::fs::DirEntry":    "std::fs::DirEntry",
	"std::fs::File":        "std::fs::File",
	"std::fs::FileTimes":   "std::fs::FileTimes",
	"std::fs::FileType":    "std::fs::FileType",
	"std::fs::Metadata":    "std::fs::Metadata",
	"std::fs::OpenOptions": "std::fs::OpenOptions",
	"std::fs::Permissions": "std::fs::Permissions",
	"std::fs::ReadDir":     "std::fs::ReadDir",

	// Module future
	"std::future::Pending": "core::future::pending::Pending",
	"std::future::PollFn":  "core::future::poll_fn::PollFn",
	"std::future::Ready":   "core::future::ready::Ready",

	// Module hash
	"std::hash::BuildHasherDefault": "core::hash::BuildHasherDefault",
	"std::hash::DefaultHasher":      "std::hash::random::DefaultHasher",
	"std::hash::RandomState":        "std::hash::random::RandomState",

	// Module io
	"std::io::BufReader":      "std::io::buffered::bufreader::BufReader",
	"std::io::BufWriter":      "std::io::buffered::bufwriter::BufWriter",
	"std::io::Bytes":          "std::io::Bytes",
	"std::io::Chain":          "std::io::Chain",
	"std::io::Cursor":         "std::io::cursor::Cursor",
	"std::io::Empty":          "std::io::util::Empty",
	"std::io::Error":          "std::io::error::Error",
	"std::io::IntoInnerError": "std::io::buffered::IntoInnerError",
	"std::io::IoSlice":        "std::io::IoSlice",
	"std::io::IoSliceMut":     "std::io::IoSliceMut",
	"std::io::LineWriter":     "std::io::buffered::linewriter::LineWriter",
	"std::io::Lines":          "std::io::Lines",
	"std::io::PipeReader":     "std::io::pipe::PipeReader",
	"std::io::PipeWriter":     "std::io::pipe::PipeWriter",
	"std::io::Repeat":         "std::io::util::Repeat",
	"std::io::Sink":           "std::io::util::Sink",
	"std::io::Split":          "std::io::Split",
	"std::io::Stderr":         "std::io::stdio::Stderr",
	"std::io::StderrLock":     "std::io::stdio::StderrLock",
	"std::io::Stdin":          "std::io::stdio::Stdin",
	"std::io::StdinLock":      "std::io::stdio::StdinLock",
	"std::io::Stdout":         "std::io::stdio::Stdout",
	"std::io::StdoutLock":     "std::io::StdoutLock",
	"std::io::Take":           "std::io::Take",
	"std::io::WriterPanicked": "std::io::buffered::bufwriter::WriterPanicked",

	// Module iter
	"std::iter::Chain":      "core::iter::adapters::chain::Chain",
	"std::iter::Cloned":     "core::iter::adapters::cloned::Cloned",
	"std::iter::Copied":     "core::iter::adapters::copied::Copied",
	"std::iter::Cycle":      "core::iter::adapters::cycle::Cycle",
	"std::iter::Empty":      "core::iter::sources::empty::Empty",
	"std::iter::Enumerate":  "core::iter::adapters::enumerate::Enumerate",
	"std::iter::Filter":     "core::iter::adapters::filter::Filter",
	"std::iter::FilterMap":  "core::iter::adapters::filter_map::FilterMap",
	"std::iter::FlatMap":    "core::iter::adapters::flatten::FlatMap",
	"std::iter::Flatten":    "core::iter::adapters::flatten::Flatten",
	"std::iter::FromFn":     "core::iter::sources::from_fn::FromFn",
	"std::iter::Fuse":       "core::iter::adapters::fuse::Fuse",
	"std::iter::Inspect":    "core::iter::adapters::inspect::Inspect",
	"std::iter::Map":        "core::iter::adapters::map::Map",
	"std::iter::MapWhile":   "core::iter::adapters::map_while::MapWhile",
	"std::iter::Once":       "core::iter::sources::once::Once",
	"std::iter::OnceWith":   "core::iter::sources::once_with::OnceWith",
	"std::iter::Peekable":   "core::iter::adapters::peekable::Peekable",
	"std::iter::Repeat":     "core::iter::sources::repeat::Repeat",
	"std::iter::RepeatN":    "core::iter::sources::repeat_n::RepeatN",
	"std::iter::RepeatWith": "core::iter::sources::repeat_with::RepeatWith",
	"std::iter::Rev":        "core::iter::adapters::rev::Rev",
	"std::iter::Scan":       "core::iter::adapters::scan::Scan",
	"std::iter::Skip":       "core::iter::adapters::skip::Skip",
	"std::iter::SkipWhile":  "core::iter::adapters::skip_while::SkipWhile",
	"std::iter::StepBy":     "core::iter::adapters::step_by::StepBy",
	"std::iter::Successors": "core::iter::sources::successors::Successors",
	"std::iter::Take":       "core::iter::adapters::take::Take",
	"std::iter::TakeWhile":  "core::iter::adapters::take_while::TakeWhile",
	"std::iter::Zip":        "core::iter::adapters::zip::Zip",

	// Module marker
	"std::marker::PhantomData":   "core::marker::PhantomData",
	"std::marker::PhantomPinned": "core::marker::PhantomPinned",

	// Module mem
	"std::mem::Discriminant": "core::mem::Discriminant",
	"std::mem::ManuallyDrop": "core::mem::manually_drop::ManuallyDrop",

	// Module net
	"std::net::AddrParseError": "core::net::parser::AddrParseError",
	"std::net::Incoming":       "std::net::tcp::Incoming",
	"std::net::Ipv4Addr":       "core::net::ip_addr::Ipv4Addr",
	"std::net::Ipv6Addr":       "core::net::ip_addr::Ipv6Addr",
	"std::net::SocketAddrV4":   "core::net::socket_addr::SocketAddrV4",
	"std::net::SocketAddrV6":   "core::net::socket_addr::SocketAddrV6",
	"std::net::TcpListener":    "std::net::tcp::TcpListener",
	"std::net::TcpStream":      "std::net::tcp::TcpStream",
	"std::net::UdpSocket":      "std::net::udp::UdpSocket",

	// Module num
	"std::num::NonZero":         "core::num::nonzero::NonZero",
	"std::num::ParseFloatError": "core::num::dec2flt::ParseFloatError",
	"std::num::ParseIntError":   "core::num::error::ParseIntError",
	"std::num::Saturating":      "core::num::saturating::Saturating",
	"std::num::TryFromIntError": "core::num::error::TryFromIntError",
	"std::num::Wrapping":        "core::num::wrapping::Wrapping",

	// Module ops
	"std::ops::Range":            "core::ops::range::Range",
	"std::ops::RangeFrom":        "core::ops::range::RangeFrom",
	"std::ops::RangeFull":        "core::ops::range::RangeFull",
	"std::ops::RangeInclusive":   "core::ops::range::RangeInclusive",
	"std::ops::RangeTo":          "core::ops::range::RangeTo",
	"std::ops::RangeToInclusive": "core::ops::range::RangeToInclusive",

	// Module option
	"std::option::IntoIter": "core::option::IntoIter",
	"std::option::Iter":     "core::option::Iter",
	"std::option::IterMut":  "core::option::IterMut",

	// Module os::fd
	"std::os::fd::BorrowedFd": "std::os::fd::owned::BorrowedFd",
	"std::os::fd::OwnedFd":    "std::os::fd::owned::OwnedFd",

	// Module panic
	"std::panic::AssertUnwindSafe": "core::panic::unwind_safe::AssertUnwindSafe",
	"std::panic::Location":         "core::panic::location::Location",
	"std::panic::PanicHookInfo":    "std::panic::PanicHookInfo",

	// Module path
	"std::path::Ancestors":        "std::path::Ancestors",
	"std::path::Components":       "std::path::Components",
	"std::path::Display":          "std::path::Display",
	"std::path::Iter":             "std::path::Iter",
	"std::path::Path":             "std::path::Path",
	"std::path::PathBuf":          "std::path::PathBuf",
	"std::path::PrefixComponent":  "std::path::PrefixComponent",
	"std::path::StripPrefixError": "std::path::StripPrefixError",

	// Module pin
	"std::pin::Pin": "core::pin::Pin",

	// Module process
	"std::process::Child":       "std::process::Child",
	"std::process::ChildStderr": "std::process::ChildStderr",
	"std::process::ChildStdin":  "std::process::ChildStdin",
	"std::process::ChildStdout": "std::process::ChildStdout",
	"std::process::Command":     "std::process::Command",
	"std::process::CommandArgs": "std::process::CommandArgs",
	"std::process::CommandEnvs": "std::process::CommandEnvs",
	"std::process::ExitCode":    "std::process::ExitCode",
	"std::process::ExitStatus":  "std::process::ExitStatus",
	"std::process::Output":      "std::process::Output",
	"std::process::Stdio":       "std::process::Stdio",

	// Module ptr
	"std::ptr::NonNull": "core::ptr::non_null::NonNull",

	// Module rc
	"std::rc::Rc":   "alloc::rc::Rc",
	"std::rc::Weak": "alloc::rc::Weak",

	// Module result
	"std::result::IntoIter": "core::result::IntoIter",
	"std::result::Iter":     "core::result::Iter",
	"std::result::IterMut":  "core::result::IterMut",

	// Module slice
	"std::slice::ChunkBy":           "core::slice::iter::ChunkBy",
	"std::slice::ChunkByMut":        "core::slice::iter::ChunkByMut",
	"std::slice::Chunks":            "core::slice::iter::Chunks",
	"std::slice::ChunksExact":       "core::slice::iter::ChunksExact",
	"std::slice::ChunksExactMut":    "core::slice::iter::ChunksExactMut",
	"std::slice::ChunksMut":         "core::slice::iter::ChunksMut",
	"std::slice::EscapeAscii":       "core::slice::ascii::EscapeAscii",
	"std::slice::Iter":              "core::slice::iter::Iter",
	"std::slice::IterMut":           "core::slice::iter::IterMut",
	"std::slice::RChunks":           "core::slice::iter::RChunks",
	"std::slice::RChunksExact":      "core::slice::iter::RChunksExact",
	"std::slice::RChunksExactMut":   "core::slice::iter::RChunksExactMut",
	"std::slice::RChunksMut":        "core::slice::iter::RChunksMut",
	"std::slice::RSplit":            "core::slice::iter::RSplit",
	"std::slice::RSplitMut":         "core::slice::iter::RSplitMut",
	"std::slice::RSplitN":           "core::slice::iter::RSplitN",
	"std::slice::RSplitNMut":        "core::slice::iter::RSplitNMut",
	"std::slice::Split":             "core::slice::iter::Split",
	"std::slice::SplitInclusive":    "core::slice::iter::SplitInclusive",
	"std::slice::SplitInclusiveMut": "core::slice::iter::SplitInclusiveMut",
	"std::slice::SplitMut":          "core::slice::iter::SplitMut",
	"std::slice::SplitN":            "core::slice::iter::SplitN",
	"std::slice::SplitNMut":         "core::slice::iter::SplitNMut",
	"std::slice::Windows":           "core::slice::iter::Windows",

	// Module str
	"std::str::Bytes":                "core::str::iter::Bytes",
	"std::str::CharIndices":          "core::str::iter::CharIndices",
	"std::str::Chars":                "core::str::iter::Chars",
	"std::str::EncodeUtf16":          "core::str::iter::EncodeUtf16",
	"std::str::EscapeDebug":          "core::str::iter::EscapeDebug",
	"std::str::EscapeDefault":        "core::str::iter::EscapeDefault",
	"std::str::EscapeUnicode":        "core::str::iter::EscapeUnicode",
	"std::str::Lines":                "core::str::iter::Lines",
	"std::str::MatchIndices":         "core::str::iter::MatchIndices",
	"std::str::Matches":              "core::str::iter::Matches",
	"std::str::ParseBoolError":       "core::str::error::ParseBoolError",
	"std::str::RMatchesIndices":      "core::str::iter::RMatchesIndices",
	"std::str::RMatches":             "core::str::iter::RMatches",
	"std::str::RSplit":               "core::str::iter::RSplit",
	"std::str::RSplitN":              "core::str::iter::RSplitN",
	"std::str::RSplitTerminator":     "core::str::iter::RSplitTerminator",
	"std::str::Split":                "core::str::iter::Split",
	"std::str::SplitAsciiWhitespace": "core::str::iter::SplitAsciiWhitespace",
	"std::str::SplitInclusive":       "core::str::iter::SplitInclusive",
	"std::str::SplitN":               "core::str::iter::SplitN",
	"std::str::SplitTerminator":      "core::str::iter::SplitTerminator",
	"std::str::SplitWhitespace":      "core::str::iter::SplitWhitespace",
	"std::str::Utf8Chunk":            "core::str::lossy::Utf8Chunk",
	"std::str::Utf8Chunks":           "core::str::lossy::Utf8Chunks",
	"std::str::Utf8Error":            "core::str::error::Utf8Error",

	// Module string
	"std::string::Drain":          "alloc::string::Drain",
	"std::string::FromUtf8Error":  "alloc::string::FromUtf8Error",
	"std::string::FromUtf16Error": "alloc::string::FromUtf16Error",
	"std::string::String":         "alloc::string::String",

	// Module sync
	"std::sync::Arc":               "alloc::sync::Arc",
	"std::sync::Barrier":           "std::sync::Barrier",
	"std::sync::BarrierWaitResult": "std::sync::BarrierWaitResult",
	"std::sync::Condvar":           "std::sync::poison::condvar::Condvar",
	"std::sync::LazyLock":          "std::sync::lazy_lock::LazyLock",
	"std::sync::Mutex":             "std::sync::poison::mutex::Mutex",
	"std::sync::MutexGuard":        "std::sync::poison::mutex::MutexGuard",
	"std::sync::Once":              "std::sync::poison::once::Once",
	"std::sync::OnceLock":          "std::sync::once_lock::OnceLock",
	"std::sync::OnceState":         "std::sync::poison::once::OnceState",
	"std::sync::PoisonError":       "std::sync::poison::PoisonError",
	"std::sync::RwLock":            "std::sync::poison::rwlock::RwLock",
	"std::sync::RwLockReadGuard":   "std::sync::poison::rwlock::RwLockReadGuard",
	"std::sync::RwLockWriteGuard":  "std::sync::poison::rwlock::RwLockWriteGuard",
	"std::sync::WaitTimeoutResult": "std::sync::poison::condvar::WaitTimeoutResult",
	"std::sync::Weak":              "alloc::sync::Weak",

	// Module task
	"std::task::Context":        "core::task::wake::Context",
	"std::task::RawWaker":       "core::task::wake::RawWaker",
	"std::task::RawWakerVTable": "core::task::wake::RawWakerVTable",
	"std::task::Waker":          "core::task::wake::Waker",

	// Module thread
	"std::thread::AccessError":      "std::thread::local::AccessError",
	"std::thread::Builder":          "std::thread::Builder",
	"std::thread::JoinHandle":       "std::thread::JoinHandle",
	"std::thread::LocalKey":         "std::thread::local::LocalKey",
	"std::thread::Scope":            "std::thread::scoped::Scope",
	"std::thread::ScopedJoinHandle": "std::thread::scoped::ScopedJoinHandle",
	"std::thread::Thread":           "std::thread::Thread",
	"std::thread::ThreadId":         "std::thread::ThreadId",

	// Module time
	"std::time::Duration":              "core::time::Duration",
	"std::time::Instant":               "std::time::Instant",
	"std::time::SystemTime":            "std::time::SystemTime",
	"std::time::SystemTimeError":       "std::time::SystemTimeError",
	"std::time::TryFromFloatSecsError": "core::time::TryFromFloatSecsError",

	// Module vec
	"std::vec::Drain":     "alloc::vec::Drain",
	"std::vec::ExtractIf": "alloc::vec::ExtractIf",
	"std::vec::IntoIter":  "alloc::vec::IntoIter",
	"std::vec::Splice":    "alloc::vec::Splice",
	"std::vec::Vec":       "alloc::vec::Vec",
}

// ResolveAlias resolves a public std path to its canonical path. Resolution
// succeeding says nothing about whether the canonical path exists in any
// particular registry snapshot.
func ResolveAlias(path string) (string, bool) {
	canonical, ok := stdAliases[path]
	return canonical, ok
}
