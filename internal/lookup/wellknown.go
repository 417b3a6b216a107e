// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lookup

// wellKnownProtos supplies minimal, wire-compatible definitions of the
// google/protobuf/*.proto files referenced by real-world schemas, so that
// protocompile can link import statements for them without a network
// fetch or a bundled copy of the real googleapis/protobuf source tree.
//
// Messages declared here are still short-circuited out of every symbol
// table by IsGoogleBuiltin (symbols.go) — they exist purely so the
// compiler front-end has something to link against.
var wellKnownProtos = map[string]string{
	"google/protobuf/wrappers.proto": `syntax = "proto3";
package google.protobuf;
message DoubleValue { double value = 1; }
message FloatValue { float value = 1; }
message Int64Value { int64 value = 1; }
message UInt64Value { uint64 value = 1; }
message Int32Value { int32 value = 1; }
message UInt32Value { uint32 value = 1; }
message BoolValue { bool value = 1; }
message StringValue { string value = 1; }
message BytesValue { bytes value = 1; }
`,
	"google/protobuf/any.proto": `syntax = "proto3";
package google.protobuf;
message Any {
  string type_url = 1;
  bytes value = 2;
}
`,
	"google/protobuf/timestamp.proto": `syntax = "proto3";
package google.protobuf;
message Timestamp {
  int64 seconds = 1;
  int32 nanos = 2;
}
`,
	"google/protobuf/duration.proto": `syntax = "proto3";
package google.protobuf;
message Duration {
  int64 seconds = 1;
  int32 nanos = 2;
}
`,
	"google/protobuf/empty.proto": `syntax = "proto3";
package google.protobuf;
message Empty {}
`,
}
